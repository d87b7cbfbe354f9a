// Package config loads application configuration from YAML files and
// FTB_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
)

type Config struct {
	Server   config.ServerConfig   `mapstructure:"server"`
	Database config.DatabaseConfig `mapstructure:"database"`
	Logger   config.LoggerConfig   `mapstructure:"logger"`
	Auth     config.AuthConfig     `mapstructure:"auth"`
	Redis    config.RedisConfig    `mapstructure:"redis"`
	Bkash    config.BkashConfig    `mapstructure:"bkash"`
}

// Load reads configuration from the given file (optional) plus the
// environment. FTB_SERVER_PORT overrides server.port and so on.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("FTB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// no config file is fine, env and defaults still apply
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.database", "ftb")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("auth.password.bcrypt_cost", 10)
	v.SetDefault("auth.jwt.access_exp_days", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// sandbox gateway; production credentials come from the environment
	v.SetDefault("bkash.base_url", "https://tokenized.sandbox.bka.sh/v1.2.0-beta")
	v.SetDefault("bkash.grant_timeout_seconds", 10)
	v.SetDefault("bkash.checkout_timeout_seconds", 15)
}

func validate(cfg *Config) error {
	if cfg.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is required")
	}
	if cfg.Bkash.AppKey == "" || cfg.Bkash.AppSecret == "" {
		return fmt.Errorf("bkash credentials are required")
	}
	return nil
}
