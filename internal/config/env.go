package config

import (
	"fmt"
	"os"
)

// GetEnv returns the value of the environment variable or the default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the environment variable or panics.
// Missing required configuration is a deployment error, caught at startup.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}
