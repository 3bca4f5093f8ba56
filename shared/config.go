package shared

import (
	"fmt"
	"os"

	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v2"
)

// DefaultConfDir is where ndiswrapper looks for driver configurations.
const DefaultConfDir = "/etc/ndiswrapper"

// Config is the ndisbuilder configuration file.
type Config struct {
	ConfDir    string `yaml:"conf_dir" validate:"nonzero"`
	AltInstall bool   `yaml:"alt_install"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		ConfDir: DefaultConfDir,
	}
}

// LoadConfig reads the YAML configuration at path on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Failed to read config %q: %w", path, err)
		}

		err = yaml.UnmarshalStrict(data, &config)
		if err != nil {
			return nil, fmt.Errorf("Failed to unmarshal config %q: %w", path, err)
		}
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validator.Validate(*c)
	if err != nil {
		return fmt.Errorf("Invalid config: %w", err)
	}

	return nil
}
