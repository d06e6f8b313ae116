package config

import (
	"os"
	"strings"
)

type Config struct {
	Port             string
	MongoURI         string
	CassandraAddress string
	JaegerAddress    string
	JWTSecret        string
	CorsOrigins      []string
}

func GetConfig() Config {
	return Config{
		Port:             envOr("PORT", "5000"),
		MongoURI:         envOr("MONGO_DB_URI", "mongodb://localhost:27017"),
		CassandraAddress: envOr("CASSANDRA_ADDRESS", "localhost"),
		JaegerAddress:    os.Getenv("JAEGER_ADDRESS"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		CorsOrigins:      splitOrigins(envOr("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
