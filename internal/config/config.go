package config

import (
	"encoding/json"
	"fmt"
	"os"

	"tabmark/internal/pkg/logger"
)

type Config struct {
	Port        int               `json:"port"`
	DBPath      string            `json:"db_path"`
	WebDir      string            `json:"web_dir"`
	PublicURL   string            `json:"public_url"`
	CORSOrigins []string          `json:"cors_origins"`
	Log         logger.LogConfig  `json:"log"`
	Metadata    MetadataConfig    `json:"metadata"`
	FaviconJob  FaviconJobConfig  `json:"favicon_job"`
	FileStore   FileStoreConfig   `json:"file_store"`
}

type MetadataConfig struct {
	TimeoutSeconds   int `json:"timeout_seconds"`
	CacheSize        int `json:"cache_size"`
	CacheTTLSeconds  int `json:"cache_ttl_seconds"`
	RateLimitSeconds int `json:"rate_limit_seconds"`
}

type FaviconJobConfig struct {
	Enable    bool   `json:"enable"`
	Spec      string `json:"spec"`
	BatchSize int    `json:"batch_size"`
}

type FileStoreConfig struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = ":memory:"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Metadata.TimeoutSeconds <= 0 {
		cfg.Metadata.TimeoutSeconds = 5
	}
	if cfg.Metadata.CacheSize <= 0 {
		cfg.Metadata.CacheSize = 256
	}
	if cfg.Metadata.CacheTTLSeconds <= 0 {
		cfg.Metadata.CacheTTLSeconds = 3600
	}
	if cfg.FaviconJob.Spec == "" {
		cfg.FaviconJob.Spec = "*/30 * * * *"
	}
	if cfg.FaviconJob.BatchSize <= 0 {
		cfg.FaviconJob.BatchSize = 20
	}
	if cfg.FileStore.Type == "" {
		cfg.FileStore.Type = "local"
		if cfg.FileStore.Data == nil {
			cfg.FileStore.Data = map[string]interface{}{"dir": "./uploads"}
		}
	}
	return &cfg, nil
}
