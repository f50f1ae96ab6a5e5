package config

import (
	"log"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	APIKey           string
	Port             string
	AllowedOrigins   string
	PredictorURL     string
	PredictorTimeout time.Duration
	RateLimitMax     int
	RateLimitWindow  time.Duration
	MaxBodyBytes     int64
}

// Load reads the environment, after merging a .env file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] ignoring .env: %v", err)
	}

	return &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBUser:           getEnv("DB_USER", "obesity"),
		DBPassword:       getEnv("DB_PASSWORD", "obesity_pass"),
		DBName:           getEnv("DB_NAME", "obesity"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		APIKey:           getEnv("API_KEY", ""),
		Port:             getEnv("PORT", "8080"),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "*"),
		PredictorURL:     getEnv("PREDICTOR_URL", ""),
		PredictorTimeout: getDuration("PREDICTOR_TIMEOUT", 2*time.Second),
		RateLimitMax:     getInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow:  getDuration("RATE_LIMIT_WINDOW", time.Minute),
		MaxBodyBytes:     int64(getInt("MAX_BODY_BYTES", 1<<20)),
	}
}

func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = c.DBHost + ":" + c.DBPort
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := cast.ToIntE(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := cast.ToDurationE(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
