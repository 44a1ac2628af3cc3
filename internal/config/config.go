package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  ServerConfig
	OpenAI  OpenAIConfig
	Log     LogConfig
	Prompts PromptsConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"8000"`
	Host           string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout    time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"90s"`
	RequestTimeout time.Duration `envconfig:"SERVER_REQUEST_TIMEOUT" default:"60s"`
	StaticDir      string        `envconfig:"SERVER_STATIC_DIR" default:"web/static"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type OpenAIConfig struct {
	Provider    string `envconfig:"OPENAI_PROVIDER" default:"openai"`
	APIKey      string `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	APIVersion  string `envconfig:"OPENAI_API_VERSION" default:"2024-06-01"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

type PromptsConfig struct {
	// File is an optional YAML prompt catalog, see LoadPrompts
	File string `envconfig:"PROMPTS_FILE"`
}

// ClientConfig configures the terminal front end.
type ClientConfig struct {
	APIURL  string        `envconfig:"COPYWRITER_API_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"COPYWRITER_TIMEOUT" default:"90s"`
}

func LoadConfig() (*Config, error) {
	loadDotEnv()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}

func LoadClientConfig() (*ClientConfig, error) {
	loadDotEnv()

	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv reads .env from the working directory. Variables already set in
// the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
}
