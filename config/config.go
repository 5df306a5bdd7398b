package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	DBPath             string
	DataDir            string
	MaxImportBytes     int64
	AllowedImportExts  []string
	AllowedImportTypes []string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes, err := strconv.ParseInt(get("MAX_IMPORT_BYTES", "5242880"), 10, 64)
	if err != nil || maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "data/seedlib.db"),
		DataDir:           get("DATA_DIR", "data"),
		MaxImportBytes:    maxBytes,
		AllowedImportExts: splitList(get("ALLOWED_IMPORT_EXTS", ".xlsx,.xls")),
		AllowedImportTypes: splitList(get("ALLOWED_IMPORT_TYPES",
			"application/vnd.ms-excel,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")),
	}
	log.Printf("[cfg] port=%s db=%s data=%s max_import=%d", cfg.Port, cfg.DBPath, cfg.DataDir, cfg.MaxImportBytes)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
