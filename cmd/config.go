package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".atto.yaml"

// Config holds interpreter options read from a YAML config file.  Flags
// given on the command line override it.
type Config struct {
	MaxDepth int    `yaml:"max-depth"`
	Corelib  *bool  `yaml:"corelib"`
	Prompt   string `yaml:"prompt"`
}

// CorelibEnabled reports whether the corelib should be loaded; it defaults
// to true when the config is silent.
func (cfg *Config) CorelibEnabled() bool {
	return cfg.Corelib == nil || *cfg.Corelib
}

// loadConfig reads the file named by --config, or the default config file
// when one exists.  A missing default file is not an error.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	path := cfgFile
	if path == "" {
		path = defaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
