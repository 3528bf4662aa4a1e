package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DataFile       string
	AllowedOrigins []string
	LogLevel       string
	LogJSON        bool

	// API rate limiting; a limit of 0 disables the middleware
	APIRateLimit  int
	APIRateWindow time.Duration

	RequestTimeout time.Duration
}

// Load reads configuration from the environment, with .env support and
// hardcoded fallbacks for local development.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data/tasks.json"
	}

	// Allowed CORS origins, comma separated. Entries like https://*.vercel.app
	// match any subdomain.
	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	rateLimit := 0
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	rateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateWindow = time.Duration(n) * time.Second
		}
	}

	requestTimeout := 15 * time.Second
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			requestTimeout = time.Duration(n) * time.Second
		}
	}

	return &Config{
		AppPort:        port,
		DataFile:       dataFile,
		AllowedOrigins: origins,
		LogLevel:       logLevel,
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		APIRateLimit:   rateLimit,
		APIRateWindow:  rateWindow,
		RequestTimeout: requestTimeout,
	}
}
