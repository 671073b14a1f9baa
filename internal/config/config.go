package config

import (
	"fmt"
	"os"
	"strconv"
)

const minSessionSecretLen = 32

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	Production    bool
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	AdminEmail    string
	AdminPassword string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBHost:        getEnv("DATABASE_HOST", "localhost"),
		DBPort:        getEnvInt("DATABASE_PORT", 3306),
		DBUser:        getEnv("DATABASE_USER", "root"),
		DBPassword:    os.Getenv("DATABASE_PASSWORD"),
		DBName:        getEnv("DATABASE_NAME", "secure_web_app"),
		SessionSecret: getEnv("SESSION_SECRET", "complex-secret-at-least-32-characters-long"),
		Production:    os.Getenv("APP_ENV") == "production",
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin123!"),
	}
}

// MySQLDSN assembles the DSN for the database/sql MySQL driver.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLen)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
