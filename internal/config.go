package internal

import (
	"fmt"
	"strings"

	"github.com/burdych/portfolio_server/internal/admin"
	"github.com/burdych/portfolio_server/internal/seed"
	"github.com/burdych/portfolio_server/internal/storage"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	ListenAddr     string   `mapstructure:"listen_addr"`
	ExternalURL    string   `mapstructure:"external_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  storage.Config `mapstructure:"storage"`
	Admin    admin.Config   `mapstructure:"admin"`
	Seed     seed.Config    `mapstructure:"seed"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile("files/config.yaml")

	viper.SetEnvPrefix("portfolio")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.listen_addr", ":8080")
	viper.SetDefault("storage.presign_upload_ttl_sec", 600)
	viper.SetDefault("storage.presign_view_ttl_sec", 3600)
	viper.SetDefault("admin.jwt_expiration_hours", 24)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if config.Server.ExternalURL == "" {
		return nil, fmt.Errorf("server.external_url is required")
	}
	return &config, nil
}
