package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Vision   VisionConfig
	Convert  ConvertConfig
	Scrape   ScrapeConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract   string
	Languages   string // tesseract -l value, e.g. "ces+pol+eng"
	TessdataDir string
	PSM         int
	TempDir     string
}

// VisionConfig holds the provider chain configuration. Provider values are
// "provider" or "provider/model" strings (e.g. "abacusai/gemini-3-flash").
type VisionConfig struct {
	TextProvider      string
	TextFallback      string
	PhotoProvider     string
	PhotoFallback     string
	GeminiAPIKey      string
	AbacusAPIKey      string
	AbacusBaseURL     string
	Timeout           time.Duration
}

// ConvertConfig holds download and PDF conversion configuration
type ConvertConfig struct {
	DownloadRetries int
	DownloadBackoff time.Duration
	DownloadTimeout time.Duration
	RenderDPI       int
	JPEGQuality     int
	TempDir         string
}

// ScrapeConfig holds scraper-related configuration
type ScrapeConfig struct {
	SeenCachePath string
	Interval      time.Duration
	UserAgent     string
	StorageDir    string // root for canonical PDFs and original media
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Languages:   getEnv("TESSERACT_LANG", "ces+pol+eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			PSM:         getEnvAsInt("TESSERACT_PSM", 3),
			TempDir:     getEnv("OCR_TEMP_DIR", "./tmp"),
		},
		Vision: VisionConfig{
			TextProvider:  getEnv("TEXT_PROVIDER", "gemini"),
			TextFallback:  getEnv("TEXT_FALLBACK_PROVIDER", ""),
			PhotoProvider: getEnv("PHOTO_PROVIDER", "gemini"),
			PhotoFallback: getEnv("PHOTO_FALLBACK_PROVIDER", ""),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			AbacusAPIKey:  getEnv("ABACUSAI_API_KEY", ""),
			AbacusBaseURL: getEnv("ABACUSAI_BASE_URL", "https://routellm.abacus.ai/v1"),
			Timeout:       getEnvAsDuration("VISION_TIMEOUT", 90*time.Second),
		},
		Convert: ConvertConfig{
			DownloadRetries: getEnvAsInt("DOWNLOAD_RETRIES", 3),
			DownloadBackoff: getEnvAsDuration("DOWNLOAD_BACKOFF", 5*time.Second),
			DownloadTimeout: getEnvAsDuration("DOWNLOAD_TIMEOUT", 30*time.Second),
			RenderDPI:       getEnvAsInt("RENDER_DPI", 300),
			JPEGQuality:     getEnvAsInt("JPEG_QUALITY", 90),
			TempDir:         getEnv("CONVERT_TEMP_DIR", "./tmp"),
		},
		Scrape: ScrapeConfig{
			SeenCachePath: getEnv("SCRAPE_SEEN_CACHE", "./tmp/seen.db"),
			Interval:      getEnvAsDuration("SCRAPE_INTERVAL", 6*time.Hour),
			UserAgent:     getEnv("SCRAPE_USER_AGENT", "parte-tracker/1.0"),
			StorageDir:    getEnv("STORAGE_DIR", "./data"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. Provider wiring is checked
// here so a misconfigured chain fails at startup, not on the first job.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Vision.GeminiAPIKey == "" && c.Vision.AbacusAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "at least one of GEMINI_API_KEY or ABACUSAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Vision.TextProvider == "" {
		return NewAppError("CONFIG_ERROR", "TEXT_PROVIDER is required", ErrInvalidInput)
	}
	if c.Vision.PhotoProvider == "" {
		return NewAppError("CONFIG_ERROR", "PHOTO_PROVIDER is required", ErrInvalidInput)
	}
	return nil
}
