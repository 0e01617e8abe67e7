package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/cms/internal/mailer"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		LogQueries bool
		// SlowQueryMs marks logged queries slower than this as warnings, 0 disables it.
		SlowQueryMs int
	}
	Auth struct {
		JWTSecret string
		// TokenTTL is the admin token lifetime in minutes.
		TokenTTL int
	}
	Mail    mailer.Config
	Uploads struct {
		Dir     string
		MaxSize int64
	}
}

// Load decodes the TOML file at path and fills unset values with defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDatabaseURL replaces the connection settings with the ones from url
// and keeps the pool settings from the file.
func (c *Config) ApplyDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	c.Database.Addr = opt.Addr
	c.Database.User = opt.User
	c.Database.Password = opt.Password
	c.Database.Database = opt.Database
	c.Database.TLSConfig = opt.TLSConfig

	return nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTL) * time.Minute
}

func (c *Config) SlowQuery() time.Duration {
	return time.Duration(c.App.SlowQueryMs) * time.Millisecond
}

func (c *Config) setDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 60
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = "uploads"
	}
	if c.Uploads.MaxSize == 0 {
		c.Uploads.MaxSize = 1 << 20
	}
	if c.Database.MaxRetries == 0 {
		c.Database.MaxRetries = 3
	}
	if c.Database.MaxConnAge == 0 {
		c.Database.MaxConnAge = 300 * time.Second
	}
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.JWTSecret must be set")
	}

	return nil
}
