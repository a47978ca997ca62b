// Package configuration reads the posixctl settings from environment-style
// files.
package configuration

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/desertwitch/posixfs/internal/posix"
	"github.com/desertwitch/posixfs/internal/random"
)

const (
	KeyDevRandom       = "POSIXCTL_DEV_RANDOM"
	KeyEntropyAvail    = "POSIXCTL_ENTROPY_AVAIL"
	KeyPoolSize        = "POSIXCTL_POOLSIZE"
	KeyCryptAlgorithm  = "POSIXCTL_CRYPT_ALGORITHM"
	KeyTempPrefix      = "POSIXCTL_TEMP_PREFIX"
	KeyLogLevel        = "POSIXCTL_LOG_LEVEL"
	KeyOutput          = "POSIXCTL_OUTPUT"
	DefaultTempPrefix  = "/tmp/posixctl."
	DefaultOutput      = OutputText
	DefaultCryptMethod = posix.CryptSHA512
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Config is the principal structure holding the application configuration.
type Config struct {
	Paths          random.Paths
	CryptAlgorithm posix.CryptAlgorithm
	TempPrefix     string
	LogLevel       slog.Level
	Output         string
}

// Default returns a pointer to a new [Config] holding the defaults.
func Default() *Config {
	return &Config{
		Paths:          random.DefaultPaths(),
		CryptAlgorithm: DefaultCryptMethod,
		TempPrefix:     DefaultTempPrefix,
		LogLevel:       slog.LevelInfo,
		Output:         DefaultOutput,
	}
}

// Handler is the principal implementation of the configuration loading.
type Handler struct {
	GenericConfigReader genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(reader genericConfigProvider) *Handler {
	return &Handler{
		GenericConfigReader: reader,
	}
}

// NewFileHandler returns a pointer to a new [Handler] reading filename with
// the provider matching its extension: TOML for ".toml", KEY=value
// otherwise.
func NewFileHandler(filename string) *Handler {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return NewHandler(&TomlProvider{})
	}

	return NewHandler(&GodotenvProvider{})
}

// Load reads filenames over the defaults. Keys missing from the files keep
// their default; without filenames the defaults are returned as they are.
func (c *Handler) Load(filenames ...string) (*Config, error) {
	cfg := Default()

	if len(filenames) == 0 {
		return cfg, nil
	}

	envMap, err := c.GenericConfigReader.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config-load) %w", err)
	}

	if v := c.MapKeyToString(envMap, KeyDevRandom); v != "" {
		cfg.Paths.Device = v
	}
	if v := c.MapKeyToString(envMap, KeyEntropyAvail); v != "" {
		cfg.Paths.EntropyAvail = v
	}
	if v := c.MapKeyToString(envMap, KeyPoolSize); v != "" {
		cfg.Paths.PoolSize = v
	}
	if v := c.MapKeyToString(envMap, KeyTempPrefix); v != "" {
		cfg.TempPrefix = v
	}

	if v := c.MapKeyToString(envMap, KeyCryptAlgorithm); v != "" {
		algo, err := posix.ParseCryptAlgorithm(v)
		if err != nil {
			return nil, fmt.Errorf("(config-load) %w: %s: %w", ErrInvalidValue, KeyCryptAlgorithm, err)
		}
		cfg.CryptAlgorithm = algo
	}

	if v := c.MapKeyToString(envMap, KeyLogLevel); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return nil, fmt.Errorf("(config-load) %s: %w", KeyLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v := c.MapKeyToString(envMap, KeyOutput); v != "" {
		output, err := ParseOutput(v)
		if err != nil {
			return nil, fmt.Errorf("(config-load) %s: %w", KeyOutput, err)
		}
		cfg.Output = output
	}

	return cfg, nil
}

// MapKeyToString returns the trimmed value of key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// ParseLogLevel resolves a case-insensitive level name.
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidValue, name)
	}

	return level, nil
}

// ParseOutput resolves a case-insensitive output format.
func ParseOutput(name string) (string, error) {
	switch output := strings.ToLower(name); output {
	case OutputText, OutputJSON, OutputYAML:
		return output, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidValue, name)
}
