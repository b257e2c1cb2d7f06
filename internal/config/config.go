package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	AppPort       string
	Env           string
	MongoURI      string
	MongoDatabase string
	ClientOrigins []string
	StaticDir     string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		Env:           getEnv("APP_ENV", EnvDevelopment),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "memberdesk"),
		ClientOrigins: parseOrigins(os.Getenv("CLIENT_ORIGINS")),
		StaticDir:     getEnv("STATIC_DIR", "client/dist"),
	}
}

// IsProduction controls whether upstream error detail is included in
// response bodies. The flag is passed into handlers explicitly; nothing
// reads the environment after startup.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseOrigins(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}

	if len(origins) == 0 {
		return nil
	}

	return origins
}
