package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Archive  ArchiveConfig
	Raster   RasterConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path        string
	BusyTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// ArchiveConfig locates the on-disk archive stores.
type ArchiveConfig struct {
	PDFDir   string
	ThumbDir string
}

// RasterConfig holds rasterization and OCR tool configuration
type RasterConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first; real environment takes precedence.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("ARCHIVE_DB_PATH", "app/app.db"),
			BusyTimeout: getEnvAsDuration("ARCHIVE_DB_BUSY_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
		},
		Archive: ArchiveConfig{
			PDFDir:   getEnv("ARCHIVE_PDF_DIR", "data/pdfs"),
			ThumbDir: getEnv("ARCHIVE_THUMB_DIR", "data/thumbs"),
		},
		Raster: RasterConfig{
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "dan+eng"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

// Validate checks the loaded configuration for required values.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "ARCHIVE_DB_PATH is required", ErrInvalidInput)
	}
	if c.Archive.PDFDir == "" || c.Archive.ThumbDir == "" {
		return NewAppError("CONFIG_ERROR", "archive directories are required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
