package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. ACCEPTANCE_DATA_PATH.
const EnvPrefix = "ACCEPTANCE"

// Config holds the full application configuration.
type Config struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// DataConfig locates and interprets the acceptance source file.
type DataConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
	Sheet  string `yaml:"sheet" mapstructure:"sheet"`
	Strict bool   `yaml:"strict" mapstructure:"strict"`
	// CachePolicy is "static" or "revalidate".
	CachePolicy string `yaml:"cache_policy" mapstructure:"cache_policy"`
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Port            int      `yaml:"port" mapstructure:"port"`
	CORSOrigins     []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	ReloadPerMinute int      `yaml:"reload_per_minute" mapstructure:"reload_per_minute"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.path", "EU_Acceptance_QB15_Combined_from_XLSX.csv")
	v.SetDefault("data.format", "")
	v.SetDefault("data.sheet", "")
	v.SetDefault("data.strict", false)
	v.SetDefault("data.cache_policy", "revalidate")
	v.SetDefault("server.port", 8501)
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.reload_per_minute", 6)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Mode is "serve"
// or "data".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be between 1 and 65535")
		}
		if c.Server.ReloadPerMinute < 0 {
			errs = append(errs, "server.reload_per_minute must be >= 0")
		}
		errs = append(errs, c.validateData()...)
	case "data":
		errs = append(errs, c.validateData()...)
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.New(fmt.Sprintf("config: %s", strings.Join(errs, "; ")))
	}
	return nil
}

func (c *Config) validateData() []string {
	var errs []string
	if strings.TrimSpace(c.Data.Path) == "" {
		errs = append(errs, "data.path is required")
	}
	switch strings.ToLower(c.Data.Format) {
	case "", "csv", "xlsx":
	default:
		errs = append(errs, fmt.Sprintf("data.format %q must be csv or xlsx", c.Data.Format))
	}
	switch strings.ToLower(strings.TrimSpace(c.Data.CachePolicy)) {
	case "", "static", "revalidate":
	default:
		errs = append(errs, fmt.Sprintf("data.cache_policy %q must be static or revalidate", c.Data.CachePolicy))
	}
	return errs
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
