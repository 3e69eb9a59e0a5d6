// config предоставляет структуру конфигурации tour-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"     env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	TourAPI  TourAPIConfig `yaml:"tourapi"`
	DB       DBConfig      `yaml:"db"`
	Limits   LimitsConfig  `yaml:"limits"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// TourAPIConfig — параметры клиента TourAPI.
//
// Сам ключ в конфиг не кладётся: клиент читает его из окружения на
// каждый вызов (KeyEnv, затем KeyEnvFallback), поэтому здесь — только
// имена переменных.
type TourAPIConfig struct {
	BaseURL        string `yaml:"base_url"         env:"TOUR_API_BASE_URL" env-default:"https://apis.data.go.kr/B551011/KorService2"`
	AppName        string `yaml:"app_name"         env:"TOUR_API_APP_NAME" env-default:"go-tour-aggregator"`
	KeyEnv         string `yaml:"key_env"          env:"TOUR_API_KEY_ENV" env-default:"TOUR_API_KEY"`
	KeyEnvFallback string `yaml:"key_env_fallback" env:"TOUR_API_KEY_ENV_FALLBACK" env-default:"TOUR_API_SERVICE_KEY"`
}

// DBConfig — настройки подключения к базе данных закладок.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// LimitsConfig — серверные лимиты размера страницы.
type LimitsConfig struct {
	// Применяется при запросе с page_size=0.
	Default int `yaml:"default" env:"DEFAULT_PAGE_SIZE" env-default:"12"`
	// Верхняя граница page_size (максимум numOfRows у апстрима — 100).
	Max int `yaml:"max" env:"MAX_PAGE_SIZE" env-default:"100"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"60s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.TourAPI.BaseURL == "" {
		return fmt.Errorf("tourapi.base_url is required")
	}
	if c.TourAPI.KeyEnv == "" {
		return fmt.Errorf("tourapi.key_env is required")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	return nil
}
