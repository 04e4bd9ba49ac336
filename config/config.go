package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "config.toml"

// Config хранит все конфигурационные параметры приложения.
// Собирается один раз при старте процесса и дальше передаётся явно.
type Config struct {
	DatabaseURL string `toml:"database_url"`
	ServerPort  int    `toml:"server_port"`
	ViewsDir    string `toml:"views_dir"`
	StaticDir   string `toml:"static_dir"`
	LogLevel    string `toml:"log_level"`

	DBConnectTimeout string `toml:"db_connect_timeout"`
	DBMaxOpenConns   int    `toml:"db_max_open_conns"`
	MigrateOnStart   bool   `toml:"migrate_on_start"`

	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	// ResetRateLimit is the number of POST /reset calls allowed per minute per client.
	ResetRateLimit int `toml:"reset_rate_limit"`
}

func defaults() *Config {
	return &Config{
		ServerPort:         8158,
		ViewsDir:           "views",
		StaticDir:          "public",
		LogLevel:           "info",
		DBConnectTimeout:   "5s",
		DBMaxOpenConns:     25,
		MigrateOnStart:     true,
		CORSAllowedOrigins: []string{"*"},
		ResetRateLimit:     5,
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем TOML файл
// (CONFIG_FILE или config.toml, если есть), затем переменные окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	cfg := defaults()

	if path, explicit := configFilePath(); path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectTimeout returns DBConnectTimeout as a duration. validate guarantees it parses.
func (c *Config) ConnectTimeout() time.Duration {
	d, _ := time.ParseDuration(c.DBConnectTimeout)
	return d
}

// SlogLevel maps LogLevel onto slog levels, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func configFilePath() (string, bool) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path, true
	}
	return defaultConfigFile, false
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	// Absent keys keep their defaults.
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		c.ServerPort = port
	}
	if v := os.Getenv("VIEWS_DIR"); v != "" {
		c.ViewsDir = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		c.DBConnectTimeout = v
	}
	if v := os.Getenv("MIGRATE_ON_START"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MIGRATE_ON_START environment variable: %w", err)
		}
		c.MigrateOnStart = b
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("RESET_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RESET_RATE_LIMIT environment variable: %w", err)
		}
		c.ResetRateLimit = n
	}
	return nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL environment variable is not set")
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if d, err := time.ParseDuration(c.DBConnectTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid db_connect_timeout %q", c.DBConnectTimeout)
	}
	if c.ResetRateLimit <= 0 {
		return fmt.Errorf("reset_rate_limit must be positive, got %d", c.ResetRateLimit)
	}
	if err := requireDir("views_dir", c.ViewsDir); err != nil {
		return err
	}
	if err := requireDir("static_dir", c.StaticDir); err != nil {
		return err
	}
	return nil
}

func requireDir(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %q: %w", name, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", name, path)
	}
	return nil
}
