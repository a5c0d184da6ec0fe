package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all runtime settings, loaded once at startup.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	TaxRate   decimal.Decimal
	JWTSecret string
	RedisAddr string
}

// Load reads the environment (and .env if present) into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:      getEnv("APP_PORT", "5050"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "productdb"),
		TaxRate:   taxRate(),
		JWTSecret: getEnv("JWT_SECRET", ""),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func taxRate() decimal.Decimal {
	raw := getEnv("TAX_RATE", "0.18")
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("invalid TAX_RATE %q, falling back to 0.18", raw)
		return decimal.NewFromFloat(0.18)
	}
	return rate
}
