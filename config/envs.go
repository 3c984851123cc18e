package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP            string // Host IP for the server
	RESTPort          int    // Port for the REST API
	DBHost            string // Hostname or IP address for the database
	DBPort            int    // Port number for the database
	DBUser            string // Username for the database
	DBPassword        string // Password for the database
	DBName            string // Name of the database
	RedisAddr         string // Address of the Redis server (host:port)
	RedisPassword     string // Password for the Redis server
	CacheTTLSeconds   int    // Lifetime of cached maze layouts
	RecentCapacity    int    // Number of mazes kept in the recent index
	RecentTTLSeconds  int    // Lifetime of the recent index after its last write
	GinMode           string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret         string // Secret key for session token signing
	JWTIssuer         string // Issuer claim for session tokens
	SessionTTLSeconds int    // Idle lifetime of an incremental generation session
	MazeWidth         int    // Default maze width
	MazeHeight        int    // Default maze height
	MazeCenterRoom    bool   // Whether default mazes carve the center room
	MazeSeed          int64  // Seed for default mazes; 0 seeds from the clock
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load reads the configuration into Envs. Packages that only need the log
// constants can import config without requiring the environment.
func Load() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:            mustGetEnv("HOST_IP"),
		RESTPort:          mustGetEnvAsInt("REST_PORT"),
		DBHost:            mustGetEnv("DB_HOST"),
		DBPort:            mustGetEnvAsInt("DB_PORT"),
		DBUser:            mustGetEnv("DB_USER"),
		DBPassword:        mustGetEnv("DB_PASS"),
		DBName:            mustGetEnv("DB_NAME"),
		RedisAddr:         mustGetEnv("REDIS_ADDR"),
		RedisPassword:     getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds:   getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 600),
		RecentCapacity:    getEnvAsIntWithDefault("RECENT_CAPACITY", 100),
		RecentTTLSeconds:  getEnvAsIntWithDefault("RECENT_TTL_SECONDS", 86400),
		GinMode:           getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:         mustGetEnv("JWT_SECRET"),
		JWTIssuer:         mustGetEnv("JWT_ISSUER"),
		SessionTTLSeconds: getEnvAsIntWithDefault("SESSION_TTL_SECONDS", 900),
		MazeWidth:         getEnvAsIntWithDefault("MAZE_WIDTH", 10),
		MazeHeight:        getEnvAsIntWithDefault("MAZE_HEIGHT", 10),
		MazeCenterRoom:    getEnvAsBoolWithDefault("MAZE_CENTER_ROOM", true),
		MazeSeed:          int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an optional integer variable, logging a fatal error if it is malformed.
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

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
