package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port         string
	DataPath     string        // CSV source file
	CacheBackend string        // memory or sqlite
	CacheDBPath  string        // only for the sqlite backend
	CacheTTL     time.Duration // result cache time-to-live
	JitterMax    float64       // max marker jitter radius, degrees
}

// Load reads configuration from the environment, with a .env file honored
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/ccc_anti_trump.csv"
	}

	backend := os.Getenv("CACHE_BACKEND")
	if backend != CacheBackendSQLite {
		backend = CacheBackendMemory
	}

	cacheDBPath := os.Getenv("CACHE_DB_PATH")
	if cacheDBPath == "" {
		cacheDBPath = "./data/cache.db"
	}

	ttl := 120 * time.Second
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	jitterMax := 0.05
	if v := os.Getenv("JITTER_MAX_DEGREES"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			jitterMax = f
		}
	}

	return &Config{
		Port:         port,
		DataPath:     dataPath,
		CacheBackend: backend,
		CacheDBPath:  cacheDBPath,
		CacheTTL:     ttl,
		JitterMax:    jitterMax,
	}
}
