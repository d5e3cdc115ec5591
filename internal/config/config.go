// Package config manages configuration for the landscapectl CLI.
// It uses Viper for unified configuration management from the user's config
// file and LANDSCAPE_-prefixed environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/landscapectl/landscapectl/internal/constants"
	"github.com/landscapectl/landscapectl/internal/request"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration, loaded once at startup and
// treated as immutable afterwards. APIKey and APISecret are the shared-secret
// credentials; they are threaded through the pipeline explicitly and never
// logged.
type Config struct {
	APIURI         string        `mapstructure:"api_uri" yaml:"api_uri" validate:"omitempty,url"`
	APIKey         string        `mapstructure:"api_key" yaml:"api_key"`
	APISecret      string        `mapstructure:"api_secret" yaml:"api_secret"`
	LogLevel       string        `mapstructure:"log_level"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

var validate = validator.New()

// envVars are the configuration keys overridable from the environment.
// LANDSCAPE_API_URI, LANDSCAPE_API_KEY and LANDSCAPE_API_SECRET match the
// variable names the Landscape tooling has always used.
var envVars = []string{
	"API_URI",
	"API_KEY",
	"API_SECRET",
	"LOG_LEVEL",
	"REQUEST_TIMEOUT",
}

// Load loads the configuration from ~/.landscapectl/config.yaml and the
// environment. Environment variables take precedence over file values. A
// missing config file is acceptable: credentials may come from the
// environment alone.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := loadConfigFile(v); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("LANDSCAPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Save saves the configuration to the user's home directory.
// Overwrites the existing config file if it exists.
func Save(config *Config) error {
	currentUser, err := user.Current()
	if err != nil {
		return fmt.Errorf("error getting current user: %w", err)
	}

	configDir := constants.ConfigDirPath(currentUser.HomeDir)

	if err = os.MkdirAll(configDir, constants.ConfigDirPermissions); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	configFilePath := filepath.Join(configDir, constants.ConfigFileName)

	v := viper.New()
	v.Set("api_uri", config.APIURI)
	v.Set("api_key", config.APIKey)
	v.Set("api_secret", config.APISecret)

	if err = v.WriteConfigAs(configFilePath); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	// The file holds the secret key, keep it private to the user.
	if err = os.Chmod(configFilePath, constants.ConfigFilePermissions); err != nil {
		return fmt.Errorf("error setting config file permissions: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("error getting current user: %w", err)
	}

	return filepath.Join(constants.ConfigDirPath(currentUser.HomeDir), constants.ConfigFileName), nil
}

// Credentials returns the shared-secret key pair for request signing.
func (c *Config) Credentials() request.Credentials {
	return request.Credentials{
		AccessKey: c.APIKey,
		SecretKey: c.APISecret,
	}
}

// GetRequestTimeout returns the configured HTTP timeout, or the default when unset.
func (c *Config) GetRequestTimeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return constants.DefaultRequestTimeout
	}
	return c.RequestTimeout
}

// GetLogLevel returns the slog.Level from the string configuration.
// Defaults to INFO if the level string is invalid.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "INFO")
	v.SetDefault("request_timeout", constants.DefaultRequestTimeout)
}

func loadConfigFile(v *viper.Viper) error {
	currentUser, err := user.Current()
	if err != nil {
		return fmt.Errorf("error getting current user: %w", err)
	}

	configFile := constants.ConfigFilePath(currentUser.HomeDir)
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	return v.ReadInConfig()
}

func bindEnvVars(v *viper.Viper) {
	for _, envVar := range envVars {
		configKey := strings.ToLower(envVar)
		_ = v.BindEnv(configKey, "LANDSCAPE_"+envVar)
	}
}
