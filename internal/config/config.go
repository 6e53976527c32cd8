package config

import "os"

type Config struct {
	Port       string
	JWTSecret  string
	CORSOrigin string
	LogLevel   string
}

// Load reads service settings from the environment. godotenv has already
// populated it in main when a .env file is present.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "dev-secret"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
