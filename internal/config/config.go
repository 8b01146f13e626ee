package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/minigrep/internal/output"
)

const (
	// CaseInsensitiveEnv disables case sensitivity when present, whatever its value.
	CaseInsensitiveEnv = "CASE_INSENSITIVE"
	colorEnv           = "MINIGREP_COLOR"
	logLevelEnv        = "MINIGREP_LOG_LEVEL"

	defaultLogLevel = "warn"
)

// lookupEnv is swapped in tests that need a variable to be truly unset.
var lookupEnv = os.LookupEnv

// Config is the resolved configuration for a single search run.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
	Color         output.Mode
	LogLevel      string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	IgnoreCase *bool  `yaml:"ignore_case"`
	Color      string `yaml:"color"`
	LogLevel   string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	Program    string
	ConfigFile string
	IgnoreCase *bool
	Color      *string
	LogLevel   *string
}

// Resolve builds a Config from positional arguments and the layered settings.
// args may start with the program name given in overrides.Program; it is
// dropped before the query and filename are read.
func Resolve(args []string, overrides *CLIOverrides) (Config, error) {
	if overrides != nil && overrides.Program != "" && len(args) > 0 && args[0] == overrides.Program {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, &MissingArgumentError{Argument: "query"}
	}
	if len(args) < 2 {
		return Config{}, &MissingArgumentError{Argument: "filename"}
	}

	cfg := defaultConfig()
	cfg.Query = args[0]
	cfg.Filename = args[1]

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	// Apply environment variables (override YAML)
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		CaseSensitive: true,
		Color:         output.ModeNever,
		LogLevel:      defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.IgnoreCase != nil {
		cfg.CaseSensitive = !*yamlCfg.IgnoreCase
	}

	if yamlCfg.Color != "" {
		mode, err := output.ParseMode(yamlCfg.Color)
		if err != nil {
			return fmt.Errorf("YAML color: %w", err)
		}
		cfg.Color = mode
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if _, ok := lookupEnv(CaseInsensitiveEnv); ok {
		cfg.CaseSensitive = false
	}

	if raw, ok := lookupEnv(colorEnv); ok && strings.TrimSpace(raw) != "" {
		mode, err := output.ParseMode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", colorEnv, err)
		}
		cfg.Color = mode
	}

	if raw, ok := lookupEnv(logLevelEnv); ok && strings.TrimSpace(raw) != "" {
		cfg.LogLevel = strings.TrimSpace(raw)
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.IgnoreCase != nil && *overrides.IgnoreCase {
		cfg.CaseSensitive = false
	}

	if overrides.Color != nil && *overrides.Color != "" {
		mode, err := output.ParseMode(*overrides.Color)
		if err != nil {
			return fmt.Errorf("parse color flag: %w", err)
		}
		cfg.Color = mode
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return nil
}
