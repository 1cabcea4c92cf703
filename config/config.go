package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	DB       DBConfig
	WhatsApp WhatsAppConfig
	Telegram TelegramConfig
}

type HTTPConfig struct {
	Port int
}

type DBConfig struct {
	// URL is the full Postgres connection string (DATABASE_URL).
	URL string
}

type WhatsAppConfig struct {
	// Number is the restaurant's WhatsApp recipient in wa.me format
	// (country code + number, digits only, no leading +).
	Number string
}

type TelegramConfig struct {
	Token       string // bot token for admin order notifications, optional
	AdminChatID int64  // chat that receives new-order cards
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	adminChatID := int64(0)
	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		adminChatID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID: %w", err)
		}
	}

	return &Config{
		HTTP: HTTPConfig{
			Port: port,
		},
		DB: DBConfig{
			URL: dbURL,
		},
		WhatsApp: WhatsAppConfig{
			Number: getEnv("WHATSAPP_NUMBER", "393478406079"),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TELEGRAM_TOKEN", ""),
			AdminChatID: adminChatID,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
