package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource        string
	Port            string
	JWTSecret       string
	JWTTTL          time.Duration
	SessionFile     string
	SimulateLatency bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using defaults")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "quickbite.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		SessionFile:     getEnv("SESSION_FILE", "session.json"),
		SimulateLatency: getEnv("SIMULATE_LATENCY", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
