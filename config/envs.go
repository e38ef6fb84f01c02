package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                  string // Host IP for the server
	RESTPort                int    // Port for the REST API
	GinMode                 string // Mode for the Gin framework (e.g., release, debug, test)
	DefaultVisibilityRadius int    // Manhattan radius used by shadow mazes when the request omits one
	DefaultFadeDelayMs      int    // Visibility fade delay used by memory mazes when the request omits one
	DefaultChangeIntervalMs int    // Wall mutation interval used by time-changing mazes when the request omits one
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:                  getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:                getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:                 getEnvWithDefault("GIN_MODE", "release"),
		DefaultVisibilityRadius: getEnvAsIntWithDefault("MAZE_VISIBILITY_RADIUS", 3),
		DefaultFadeDelayMs:      getEnvAsIntWithDefault("MAZE_FADE_DELAY_MS", 2000),
		DefaultChangeIntervalMs: getEnvAsIntWithDefault("MAZE_CHANGE_INTERVAL_MS", 5000),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
