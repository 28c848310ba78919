package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFile is the optional YAML file read from the working directory.
const ConfigFile = "listing-writer.yaml"

const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	CORS struct {
		AllowOrigins []string
	}
	LLM struct {
		Provider string
		APIKey   string
		Model    string
		BaseURL  string
	}
	LogLevel string
}

// Load reads config from the environment and an optional listing-writer.yaml.
// Environment variables take precedence over the file.
// Keys map to env vars by upper-casing and replacing "." with "_", so
// openai.api_key is OPENAI_API_KEY.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// An explicit file name keeps viper from matching an extensionless
	// "listing-writer" (the built binary) in the working directory.
	v.SetConfigFile(ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("provider", ProviderMock)
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("log.level", "info")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.CORS.AllowOrigins = ParseOrigins(v.GetString("cors.allow_origins"))
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(v.GetString("provider")))
	cfg.LLM.APIKey = v.GetString("openai.api_key")
	cfg.LLM.Model = v.GetString("openai.model")
	cfg.LLM.BaseURL = v.GetString("openai.base_url")
	cfg.LogLevel = v.GetString("log.level")

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = ProviderMock
	}
	if cfg.HTTP.Addr == "" {
		return nil, fmt.Errorf("HTTP_ADDR must not be empty")
	}

	return cfg, nil
}

// ParseOrigins splits a comma-separated origin list. A bare "*" (or an empty
// value) allows every origin.
func ParseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// UsesOpenAI reports whether the remote provider is selected.
func (c *Config) UsesOpenAI() bool {
	return strings.EqualFold(strings.TrimSpace(c.LLM.Provider), ProviderOpenAI)
}
