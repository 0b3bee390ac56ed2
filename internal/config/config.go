package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server and client configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Client    ClientConfig    `yaml:"client"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path, when set, sends logs to a size-rotated file instead of the console.
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type TransportConfig struct {
	// Mode is "http" (REST + MCP over HTTP) or "stdio" (MCP only).
	Mode string `yaml:"mode"`
}

// ClientConfig configures the command-line client.
type ClientConfig struct {
	RemoteURL string        `yaml:"remote_url"`
	DataDir   string        `yaml:"data_dir"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "daylog.db",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  6,
			MaxBackups: 3,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Client: ClientConfig{
			RemoteURL: "http://localhost:8080",
			DataDir:   defaultDataDir(),
			Timeout:   10 * time.Second,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("DAYLOG_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("DAYLOG_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("DAYLOG_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DAYLOG_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("DAYLOG_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DAYLOG_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("DAYLOG_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := os.Getenv("DAYLOG_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if url := os.Getenv("DAYLOG_REMOTE_URL"); url != "" {
		cfg.Client.RemoteURL = url
	}
	if dir := os.Getenv("DAYLOG_DATA_DIR"); dir != "" {
		cfg.Client.DataDir = dir
	}
	if timeout := os.Getenv("DAYLOG_REMOTE_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DAYLOG_REMOTE_TIMEOUT: %w", err)
		}
		cfg.Client.Timeout = d
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q: want http or stdio", c.Transport.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Client.Timeout < 0 {
		return fmt.Errorf("invalid client timeout %s", c.Client.Timeout)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daylog"
	}
	return filepath.Join(home, ".daylog")
}
