package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Billa BillaConfig `mapstructure:"billa"`
}

// BillaConfig holds Billa shop API configuration
type BillaConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	FilesURL string `mapstructure:"files_url"`
	Category string `mapstructure:"category"`
	PageSize int    `mapstructure:"page_size"`
	Timeout  int    `mapstructure:"timeout"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("billa.base_url", "https://shop.billa.at")
	viper.SetDefault("billa.files_url", "https://files.billa.at")
	viper.SetDefault("billa.category", "B2")
	viper.SetDefault("billa.page_size", 9175)
	viper.SetDefault("billa.timeout", 30)
}
