package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName     string
	Port        string
	Env         string
	Debug       bool
	BaseURL     string // used when building QR label URLs
	UploadDir   string
	QRDir       string
	ExportDir   string
	TokenSecret string
	TokenTTLMin int // session token lifetime in minutes
	MaxUploadMB int64
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:     envOr("APP_NAME", "ativos"),
			Port:        envOr("PORT", "8080"),
			Env:         os.Getenv("APP_ENV"),
			Debug:       os.Getenv("DEBUG") == "true",
			BaseURL:     envOr("BASE_URL", "http://localhost:8080"),
			UploadDir:   envOr("UPLOAD_DIR", "static/uploads"),
			QRDir:       envOr("QR_DIR", "static/qrcodes"),
			ExportDir:   envOr("EXPORT_DIR", "static/exports"),
			TokenSecret: envOr("SECRET_KEY", "ativos_secret_key_CHANGE_IN_PRODUCTION"),
			TokenTTLMin: envIntOr("SESSION_TTL_MIN", 30),
			MaxUploadMB: int64(envIntOr("MAX_UPLOAD_MB", 16)),
		}
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
