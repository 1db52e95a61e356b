// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Version information, set at build time via ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Config is the application configuration. Values come from an optional
// yaml file plus ORGHUB_* environment variables, env wins.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Organizations OrganizationsConfig `mapstructure:"organizations"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// CORSOrigins are the browser origins allowed to call the API with
	// credentials.
	CORSOrigins []string `mapstructure:"cors_origins"`
	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// OrganizationsConfig holds the organization domain settings
type OrganizationsConfig struct {
	// Autocreate makes EnsureOrganization create missing organizations on
	// the fly instead of failing the lookup.
	Autocreate bool `mapstructure:"autocreate"`
}

// Load reads the configuration. configPath may be empty, in which case
// defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("orghub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.request_timeout", "10s")

	v.SetDefault("auth.jwt_secret", "")

	// mirrors the historical ORGANIZATIONS_AUTOCREATE toggle
	v.SetDefault("organizations.autocreate", true)
}
