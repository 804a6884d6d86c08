package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv            string
	AppPort           string
	DbDriver          string
	DbDSN             string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	Timezone          string
	TranslationFolder string
	TrustedProxies    []string
}

// LoadConfig reads .env, if present, and the process environment. Variables
// already set in the environment take precedence over .env.
func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:            getEnv("APP_ENV", EnvProduction),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DbDSN:             getEnv("DB_DSN", ""),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "planner"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "planner"),
		DbName:            getEnv("MYSQL_DATABASE", "planner"),
		DbParams:          getEnv("MYSQL_PARAMS", "multiStatements=true"),
		Timezone:          getEnv("PLANNER_TIMEZONE", "Asia/Shanghai"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", ""),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
