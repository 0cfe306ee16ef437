// file: config/config.go

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RULES_MERGE_MERGE_SRCDIR.
const EnvPrefix = "RULES_MERGE"

type Config struct {
	Merge   MergeConfig   `json:"merge" yaml:"merge" mapstructure:"merge"`
	Plan    PlanConfig    `json:"plan" yaml:"plan" mapstructure:"plan"`
	Logging LogConfig     `json:"logging" yaml:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}

type MergeConfig struct {
	Dest     string `json:"dest" yaml:"dest" mapstructure:"dest"`             // output file, empty means stdout
	SrcDir   string `json:"srcdir" yaml:"srcdir" mapstructure:"srcdir"`       // root of source-location candidates
	BuildDir string `json:"builddir" yaml:"builddir" mapstructure:"builddir"` // root of build-location candidates
}

type PlanConfig struct {
	Format string `json:"format" yaml:"format" mapstructure:"format"` // json or yaml
}

type LogConfig struct {
	Level      string `json:"level" yaml:"level" mapstructure:"level"`                // debug, info, warn, error
	OutputPath string `json:"outputPath" yaml:"outputPath" mapstructure:"outputPath"` // file path, "stderr" or "stdout"
	Encoding   string `json:"encoding" yaml:"encoding" mapstructure:"encoding"`       // json or console
}

type MetricsConfig struct {
	File string `json:"file" yaml:"file" mapstructure:"file"` // textfile collector output, empty disables
}

// flagKeys maps CLI flag names to their configuration keys.
var flagKeys = map[string]string{
	"dest":         "merge.dest",
	"srcdir":       "merge.srcdir",
	"builddir":     "merge.builddir",
	"format":       "plan.format",
	"log-level":    "logging.level",
	"log-encoding": "logging.encoding",
	"log-output":   "logging.outputPath",
	"metrics-file": "metrics.file",
}

// Load builds the configuration from defaults, an optional config file,
// RULES_MERGE_* environment variables and the given flags, in increasing
// order of precedence. An empty configPath skips the file.
func Load(fs afero.Fs, configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	registerDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// registerDefaults makes every key known to viper so environment
// variables are picked up by Unmarshal.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("merge.dest", "")
	v.SetDefault("merge.srcdir", ".")
	v.SetDefault("merge.builddir", ".")
	v.SetDefault("plan.format", "json")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.outputPath", "stderr")
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("metrics.file", "")
}

// setDefaults fills values a config file or flag explicitly left empty
func setDefaults(cfg *Config) {
	if cfg.Merge.SrcDir == "" {
		cfg.Merge.SrcDir = "."
	}
	if cfg.Merge.BuildDir == "" {
		cfg.Merge.BuildDir = "."
	}

	if cfg.Plan.Format == "" {
		cfg.Plan.Format = "json"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	// stdout is reserved for merged output
	if cfg.Logging.OutputPath == "" {
		cfg.Logging.OutputPath = "stderr"
	}
	if cfg.Logging.Encoding == "" {
		cfg.Logging.Encoding = "console"
	}
}

// validateConfig performs validation of all configuration values
func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.Logging.Level)
	}

	switch cfg.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log encoding: %s", cfg.Logging.Encoding)
	}

	switch cfg.Plan.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid plan format: %s", cfg.Plan.Format)
	}

	if cfg.Merge.Dest != "" && cfg.Merge.Dest == cfg.Metrics.File {
		return fmt.Errorf("metrics file must differ from merge destination: %s", cfg.Merge.Dest)
	}

	return nil
}
