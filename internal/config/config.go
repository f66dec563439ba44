package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config collects every environment-sourced value the portal needs. Database
// settings are required to start at all; factory and agent settings only
// degrade the operations that depend on them.
type Config struct {
	Port int

	// Sqlite path, used when no Postgres host is configured.
	DBPath string

	// Postgres settings.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	FactoryAddress string
	ChainID        int64
	AgentID        string

	// Optional HS256 secret; when set, the write endpoint requires a
	// bearer token.
	AuthSecret string
}

// Load reads the configuration from the environment.
func Load() *Config {
	chainID, _ := strconv.ParseInt(os.Getenv("CHAIN_ID"), 10, 64)
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		port = 8080
	}

	return &Config{
		Port:           port,
		DBPath:         getEnv("DB_PATH", "agent-portal.db"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		FactoryAddress: os.Getenv("FACTORY_ADDRESS"),
		ChainID:        chainID,
		AgentID:        os.Getenv("AGENT_ID"),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
	}
}

// UsePostgres reports whether a Postgres connection is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN builds the connection string for the configured Postgres
// instance, or an error naming the missing variable.
func (c *Config) PostgresDSN() (string, error) {
	if c.DBUser == "" {
		return "", fmt.Errorf("DB_USER is not set")
	}
	if c.DBName == "" {
		return "", fmt.Errorf("DB_NAME is not set")
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
