package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

const defaultGoogleBaseURL = "https://www.googleapis.com/customsearch/v1"

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Database struct {
		Driver string `json:"driver"` // "sqlite" or "postgres"
		DSN    string `json:"dsn"`
	} `json:"database"`
	Google struct {
		APIKey  string `json:"api_key"`
		CX      string `json:"cx"`
		BaseURL string `json:"base_url"`
	} `json:"google"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
}

// LoadConfig reads the JSON config file and applies environment overrides.
// Secrets (JWT secret, Google API key) are expected to come from the
// environment in production; the file only has to carry the rest.
func LoadConfig(path string) (*Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid config format: %w", err)
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Server.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.Google.APIKey = v
	}
	if v := os.Getenv("GOOGLE_CX"); v != "" {
		c.Google.CX = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Google.BaseURL == "" {
		c.Google.BaseURL = defaultGoogleBaseURL
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "./fetscr.db"
	}
}

func (c *Config) validate() error {
	if c.Server.JWTSecret == "" {
		return errors.New("jwtSecret must be set in config or JWT_SECRET")
	}
	if c.Google.APIKey == "" {
		return errors.New("google api_key must be set in config or GOOGLE_API_KEY")
	}
	if c.Google.CX == "" {
		return errors.New("google cx must be set in config or GOOGLE_CX")
	}
	return nil
}
