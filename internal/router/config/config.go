package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Config holds the router daemon configuration.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Stream    StreamConfig    `json:"stream" yaml:"stream"`
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
	Logger    logger.Config   `json:"logger" yaml:"logger"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

type StreamConfig struct {
	Name string `json:"name" yaml:"name"`
	ARN  string `json:"arn" yaml:"arn"`

	// HashAlgorithm selects how partition keys map into the hash space:
	// "md5" (stream-service compatible) or "murmur3".
	HashAlgorithm string `json:"hash_algorithm" yaml:"hash_algorithm"`

	MinBackoffMs     int64 `json:"min_backoff_ms" yaml:"min_backoff_ms"`
	MaxBackoffMs     int64 `json:"max_backoff_ms" yaml:"max_backoff_ms"`
	ClosedShardTTLMs int64 `json:"closed_shard_ttl_ms" yaml:"closed_shard_ttl_ms"`
	PageLimit        int32 `json:"page_limit" yaml:"page_limit"`
}

type DirectoryConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: "127.0.0.1:8090",
		},
		Stream: StreamConfig{
			HashAlgorithm:    "md5",
			MinBackoffMs:     1000,
			MaxBackoffMs:     30000,
			ClosedShardTTLMs: 60000,
			PageLimit:        1000,
		},
		Directory: DirectoryConfig{
			Addr: "127.0.0.1:9090",
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// Load loads configuration from file.
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "router", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	return parsedCfg, nil
}
