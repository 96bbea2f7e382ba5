// config — источник загрузки конфигурации фронта и dev-бэкенда.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Web     WebConfig     `yaml:"web"`
	Ops     OpsConfig     `yaml:"ops"`
	Backend BackendConfig `yaml:"backend"`
	Stub    StubConfig    `yaml:"stub"`
}

// WebConfig — HTTP-сервер пользовательского интерфейса.
type WebConfig struct {
	Host string `yaml:"host" env:"WEB_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"WEB_PORT" env-default:"8080"`
}

func (w WebConfig) Addr() string { return net.JoinHostPort(w.Host, w.Port) }

// OpsConfig — отдельный HTTP для /metrics и health-проб.
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"8081"`
}

func (o OpsConfig) Addr() string { return net.JoinHostPort(o.Host, o.Port) }

// BackendConfig — адрес API бэкенда и дедлайн одиночного запроса.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:5000"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"15s"`
}

// StubConfig — настройки dev-бэкенда (cmd/stubapi).
type StubConfig struct {
	Host          string `yaml:"host" env:"STUB_HOST" env-default:"0.0.0.0"`
	Port          string `yaml:"port" env:"STUB_PORT" env-default:"5000"`
	DBPath        string `yaml:"db_path" env:"STUB_DB_PATH" env-default:"/tmp/inquiries.db"`
	UploadDir     string `yaml:"upload_dir" env:"STUB_UPLOAD_DIR" env-default:"/tmp/uploads"`
	AdminPassword string `yaml:"admin_password" env:"STUB_ADMIN_PASSWORD" env-default:"hanstar"`
	PerPage       int    `yaml:"per_page" env:"STUB_PER_PAGE" env-default:"15"`
}

func (s StubConfig) Addr() string { return net.JoinHostPort(s.Host, s.Port) }

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
