package configuration

import (
	"fmt"
	"maps"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read parses KEY=value files into one map (map[key]value). Keys of later
// files override those of earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	envMap := make(map[string]string)

	for _, name := range filenames {
		data, err := godotenv.Read(name)
		if err != nil {
			return nil, fmt.Errorf("(config-godotenv) %s: %w", name, err)
		}
		maps.Copy(envMap, data)
	}

	return envMap, nil
}
