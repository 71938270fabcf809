package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config interface {
	EnvConfig
	CorsConfig
	SessionConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDataFolder() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type SessionConfig interface {
	GetSessionFile() string
	GetPrincipalsFile() string
	GetRedisAddr() string
	GetRedisSessionKey() string
	GetLoginLatency() time.Duration
	GetPrincipalCacheTTL() time.Duration
}

type envVars struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	AppName           string        `env:"APP_NAME" envDefault:"Harborline Portal"`
	Env               string        `env:"ENV" envDefault:"DEV"`
	DataFolder        string        `env:"DATA_FOLDER" envDefault:"./data"`
	SessionFile       string        `env:"SESSION_FILE"`
	PrincipalsFile    string        `env:"PRINCIPALS_FILE"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisSessionKey   string        `env:"REDIS_SESSION_KEY" envDefault:"portal:session"`
	LoginLatency      time.Duration `env:"LOGIN_LATENCY" envDefault:"800ms"`
	PrincipalCacheTTL time.Duration `env:"PRINCIPAL_CACHE_TTL" envDefault:"5m"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
}

type mainConfig struct {
	vars envVars
}

// New loads configuration from the environment, with an optional .env file
// for local development.
func New() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	vars := envVars{}
	if err := env.Parse(&vars); err != nil {
		return nil, errors.Wrap(err, "[config.New] parse environment")
	}
	return &mainConfig{vars: vars}, nil
}

func (c *mainConfig) GetPort() string {
	port := c.vars.Port
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (c *mainConfig) GetAppName() string {
	return c.vars.AppName
}

func (c *mainConfig) GetEnv() string {
	return c.vars.Env
}

func (c *mainConfig) GetDataFolder() string {
	return c.vars.DataFolder
}

func (c *mainConfig) GetSessionFile() string {
	if c.vars.SessionFile != "" {
		return c.vars.SessionFile
	}
	return c.vars.DataFolder + "/session.json"
}

func (c *mainConfig) GetPrincipalsFile() string {
	if c.vars.PrincipalsFile != "" {
		return c.vars.PrincipalsFile
	}
	return c.vars.DataFolder + "/principals.json"
}

func (c *mainConfig) GetRedisAddr() string {
	return c.vars.RedisAddr
}

func (c *mainConfig) GetRedisSessionKey() string {
	return c.vars.RedisSessionKey
}

func (c *mainConfig) GetLoginLatency() time.Duration {
	return c.vars.LoginLatency
}

func (c *mainConfig) GetPrincipalCacheTTL() time.Duration {
	return c.vars.PrincipalCacheTTL
}

func (c *mainConfig) GetAllowedOrigins() AllowedOrigins {
	origins := make(AllowedOrigins, len(c.vars.AllowedOrigins))
	for _, o := range c.vars.AllowedOrigins {
		origins[strings.TrimSpace(o)] = struct{}{}
	}
	return origins
}

func (c *mainConfig) GetAllowedMethods() string {
	return "GET, POST, PUT, PATCH, DELETE"
}

func (c *mainConfig) GetAllowedHeaders() string {
	return "Content-Type, Authorization"
}
