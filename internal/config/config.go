// Package config handles configuration loading for the social backend.
package config

import (
	"net/http"
	"strings"
	"time"
)

// Config holds all configuration for the service, read once at startup.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	JWTSecret      string
	JWTExpiry      time.Duration
	Port           string
	Environment    string
	AllowedOrigins []string
	SwaggerHost    string
	Cookie         CookieConfig
}

// CookieConfig controls how the auth cookie is written.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// Load reads configuration from environment variables.
func Load() *Config {
	env := GetEnv("ENVIRONMENT", "development")

	return &Config{
		DBHost:         GetEnvRequired("DB_HOST"),
		DBPort:         GetEnvRequired("DB_PORT"),
		DBUser:         GetEnvRequired("DB_USER"),
		DBPassword:     GetEnvRequired("DB_PASSWORD"),
		DBName:         GetEnvRequired("DB_NAME"),
		RedisHost:      GetEnvRequired("REDIS_HOST"),
		RedisPort:      GetEnvRequired("REDIS_PORT"),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		JWTSecret:      GetEnvRequired("JWT_SECRET"),
		JWTExpiry:      parseDuration(GetEnv("JWT_EXPIRY", "168h"), 168*time.Hour),
		Port:           GetEnv("PORT", "8080"),
		Environment:    env,
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		SwaggerHost:    GetEnv("SWAGGER_HOST", ""),
		Cookie:         cookieConfig(env),
	}
}

// IsDevelopment reports whether the service runs in development mode.
// Development mode includes internal error detail in responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func cookieConfig(env string) CookieConfig {
	if env == "production" {
		return CookieConfig{
			Domain:   GetEnv("COOKIE_DOMAIN", ""),
			Path:     "/",
			Secure:   true,
			SameSite: http.SameSiteStrictMode,
		}
	}
	return CookieConfig{
		Path:     "/",
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
