package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/maxshaw/qsql/qb"
)

const (
	maxWalkDepth = 25
	envPrefix    = "QSQL"
)

var configNames = []string{"qsql.yaml", "qsql.yml"}

// Config represents the qsql configuration from qsql.yaml.
type Config struct {
	EscapeChar string `mapstructure:"escape_char"`
	Verbose    bool   `mapstructure:"verbose"`
	Color      bool   `mapstructure:"color"`
}

// LoadConfig discovers and loads configuration with precedence
// env > config file > defaults. Flags are applied by the caller.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("escape_char", qb.DefaultEscapeChar)
	v.SetDefault("verbose", false)
	v.SetDefault("color", true)
}

// Validate checks that the escape character is a single character.
func (c *Config) Validate() error {
	if n := utf8.RuneCountInString(c.EscapeChar); n != 1 {
		return fmt.Errorf("escape_char must be a single character, got %q", c.EscapeChar)
	}
	return nil
}

// Escaper returns the escaper described by the config.
func (c *Config) Escaper() *qb.Escaper {
	return qb.NewEscaper(c.EscapeChar)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for qsql.yaml or qsql.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}
