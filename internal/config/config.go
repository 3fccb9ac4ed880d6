package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings is the service configuration, sourced from the environment
// (optionally seeded from a .env file) with working defaults.
type Settings struct {
	Port         string
	BackendURL   string
	AdminPIN     string
	LogFile      string
	PollInterval time.Duration
	HTTPTimeout  time.Duration
}

// C is the globally accessible configuration, set by Load.
var C Settings

// Load reads the environment into C.
func Load() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BACKEND_URL", "https://fishyy-backend.onrender.com")
	viper.SetDefault("ADMIN_PIN", "9999")
	viper.SetDefault("LOG_FILE", "./logs/app.log")
	viper.SetDefault("POLL_INTERVAL_MS", 5000)
	viper.SetDefault("HTTP_TIMEOUT_MS", 10000)

	C = Settings{
		Port:         viper.GetString("PORT"),
		BackendURL:   viper.GetString("BACKEND_URL"),
		AdminPIN:     viper.GetString("ADMIN_PIN"),
		LogFile:      viper.GetString("LOG_FILE"),
		PollInterval: time.Duration(viper.GetInt("POLL_INTERVAL_MS")) * time.Millisecond,
		HTTPTimeout:  time.Duration(viper.GetInt("HTTP_TIMEOUT_MS")) * time.Millisecond,
	}
}
