package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken      string
	TelegramAPI   string
	WebhookSecret string

	StylesFile string

	BaseURL string
	Port    string
	DataDir string
}

func Load() (*Config, error) {
	// .env is optional, production sets the variables directly
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAPI:   os.Getenv("TELEGRAM_API_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		StylesFile:    os.Getenv("STYLES_FILE"),
		BaseURL:       os.Getenv("BASE_URL"),
		Port:          os.Getenv("PORT"),
		DataDir:       os.Getenv("DATA_DIR"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "."
	}

	if cfg.TelegramAPI == "" {
		cfg.TelegramAPI = "https://api.telegram.org"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}

	if cfg.WebhookSecret == "" {
		token, err := randomHex(16)
		if err != nil {
			return nil, fmt.Errorf("generating webhook secret: %w", err)
		}
		cfg.WebhookSecret = token
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("required env var TELEGRAM_BOT_TOKEN is not set")
	}

	return cfg, nil
}

// WebhookURL is the public address Telegram posts updates to.
func (c *Config) WebhookURL() string {
	return c.BaseURL + "/webhook"
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
