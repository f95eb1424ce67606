package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr     string   `yaml:"listen_addr"`
	Port           string   `yaml:"port"`
	RecipesPath    string   `yaml:"recipes_path"`
	StaticDir      string   `yaml:"static_dir"`
	AllowedOrigins []string `yaml:"cors_allowed_origins"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	LogFile        string   `yaml:"log_file"`
}

// Load builds the configuration from defaults, then the YAML file named by
// KITCHEN_CONFIG (if any), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           "3000",
		RecipesPath:    "recipes.json",
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
		LogFormat:      "json",
	}

	if path := os.Getenv("KITCHEN_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.RecipesPath = getEnv("RECIPES_PATH", cfg.RecipesPath)
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(origins)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":" + cfg.Port
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
