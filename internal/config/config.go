package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	DataDir    string
	StaticDir  string
	AdminToken string
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:       getenv("BOARD_ADDR", ":8080"),
		DataDir:    getenv("BOARD_DATA_DIR", "./data"),
		StaticDir:  getenv("BOARD_STATIC_DIR", "./web"),
		AdminToken: os.Getenv("BOARD_ADMIN_TOKEN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
