package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every field carries its fully qualified
// SIKASHOP_ variable name in its envconfig tag.
const EnvPrefix = ""

// Environment variable names shared with tests and deployment manifests.
const (
	EnvAppEnv       = "SIKASHOP_APP_ENV"
	EnvPort         = "SIKASHOP_APP_PORT"
	EnvLogLevel     = "SIKASHOP_LOG_LEVEL"
	EnvGeminiAPIKey = "SIKASHOP_GEMINI_API_KEY"
	EnvGeminiModel  = "SIKASHOP_GEMINI_MODEL"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Gemini GeminiConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SIKASHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"SIKASHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SIKASHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SIKASHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	ReadTimeout     time.Duration `envconfig:"SIKASHOP_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SIKASHOP_SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SIKASHOP_SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// GeminiConfig controls the stylist advice integration. The API key is
// optional: with no key the stylist answers with its offline apology instead
// of failing startup.
type GeminiConfig struct {
	APIKey  string        `envconfig:"SIKASHOP_GEMINI_API_KEY"`
	Model   string        `envconfig:"SIKASHOP_GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"SIKASHOP_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `envconfig:"SIKASHOP_GEMINI_TIMEOUT" default:"30s"`
}
