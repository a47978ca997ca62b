package configuration

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TomlProvider is an implementation reading TOML files whose top-level keys
// are the same as those of the KEY=value files.
type TomlProvider struct{}

// Read decodes TOML files into one map (map[key]value). Non-string values
// are formatted; keys of later files override those of earlier ones.
func (*TomlProvider) Read(filenames ...string) (map[string]string, error) {
	envMap := make(map[string]string)

	for _, name := range filenames {
		var raw map[string]any
		if _, err := toml.DecodeFile(name, &raw); err != nil {
			return nil, fmt.Errorf("(config-toml) %s: %w", name, err)
		}

		for key, value := range raw {
			if s, ok := value.(string); ok {
				envMap[key] = s

				continue
			}
			envMap[key] = fmt.Sprint(value)
		}
	}

	return envMap, nil
}
