// Package config предоставляет структуры и функции для загрузки конфига админ-консоли.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// EnvLocal окружение разработчика, логи в текстовом виде.
	EnvLocal = "local"
	// EnvProd боевое окружение, логи в JSON.
	EnvProd = "prod"

	// SessionDriverFile хранит токен в файле.
	SessionDriverFile = "file"
	// SessionDriverRedis хранит токен в redis.
	SessionDriverRedis = "redis"
	// SessionDriverMemory хранит токен в памяти процесса.
	SessionDriverMemory = "memory"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel        string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Backend         `yaml:"backend"`
	Session         `yaml:"session"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	RateLimit       `yaml:"rate_limit"`
}

// Backend адрес REST-бэкенда. Нулевой таймаут означает отсутствие таймаута.
type Backend struct {
	BaseURL        string        `yaml:"base_url" env:"API_BASE_URL" env-default:"https://payrolladminbackend.cenzios.com/api"`
	TimeoutBackend time.Duration `yaml:"timeout" env:"API_TIMEOUT"`
}

// Session где хранится токен между перезапусками.
type Session struct {
	Driver   string `yaml:"driver" env:"SESSION_DRIVER" env-default:"file"`
	FilePath string `yaml:"file_path" env:"SESSION_FILE" env-default:".admin-console/token"`
	Key      string `yaml:"key" env:"SESSION_KEY" env-default:"token"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// HTTPServer структура для настройки шлюза консоли
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"localhost:8081"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RateLimit ограничение частоты dispatch-запросов к шлюзу.
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла, переменные окружения имеют приоритет.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("backend base_url is empty")
	}
	switch c.Driver {
	case SessionDriverFile:
		if c.FilePath == "" {
			return fmt.Errorf("session file_path is empty")
		}
	case SessionDriverRedis:
		if c.AddressRedis == "" {
			return fmt.Errorf("redis address is required for session driver %q", c.Driver)
		}
	case SessionDriverMemory:
	default:
		return fmt.Errorf("unknown session driver %q", c.Driver)
	}
	if c.Key == "" {
		return fmt.Errorf("session key is empty")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"LogLevel: %s\n"+
			"Backend:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"Session:\n"+
			"  Driver: %s\n"+
			"  FilePath: %s\n"+
			"  Key: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.LogLevel,
		c.BaseURL,
		c.TimeoutBackend,
		c.Driver,
		c.FilePath,
		c.Key,
		c.AddressRedis,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RPS,
		c.Burst,
	)
}
