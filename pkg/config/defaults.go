// Package config provides centralized default values for Quillstack
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// CMS Endpoint Configuration
	CMSEndpointBase string
	CMSSiteID       string
	CMSHTTPTimeout  time.Duration

	// Editor Authentication
	JWTSecret         string
	EditorPassword    string
	EditorTokenTTL    time.Duration
	EditorTokenIssuer string

	// Logging
	LogDirectory    string
	LogToFile       bool
	LogLevelDefault string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// CMS Endpoint Configuration
	CMSEndpointBase = getEnvString("CMS_ENDPOINT_BASE", "http://localhost:4502/graphql/execute.json/quillstack")
	CMSSiteID = getEnvString("CMS_SITE_ID", "quillstack")
	CMSHTTPTimeout = getEnvDuration("CMS_HTTP_TIMEOUT", 30*time.Second)

	// Editor Authentication
	JWTSecret = getEnvString("JWT_SECRET", "")
	EditorPassword = getEnvString("EDITOR_PASSWORD", "")
	EditorTokenTTL = getEnvDuration("EDITOR_TOKEN_TTL", 12*time.Hour)
	EditorTokenIssuer = getEnvString("EDITOR_TOKEN_ISSUER", "quillstack-go")

	// Logging
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogLevelDefault = getEnvString("LOG_LEVEL", "info")
}
