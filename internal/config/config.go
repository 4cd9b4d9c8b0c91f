// Package config содержит логику чтения конфигурации кассы кинотеатра.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultCatalogPath = "movies.csv"
	defaultReceiptPath = "receipt.txt"
)

// Config содержит параметры конфигурации кассы кинотеатра.
// Пустой RunAddress означает работу без HTTP API, только интерактивная сессия.
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	CatalogPath string `env:"CATALOG_PATH"`
	ReceiptPath string `env:"RECEIPT_PATH"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных
// окружения; значения окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	_ = godotenv.Load() // .env подхватывается при наличии, отсутствие не ошибка

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envCatalogPath := cfg.CatalogPath
	envReceiptPath := cfg.ReceiptPath

	flag.StringVar(&cfg.RunAddress, "a", "", "address and port for the HTTP API (empty disables it)")
	flag.StringVar(&cfg.CatalogPath, "c", defaultCatalogPath, "path to the movie catalog file")
	flag.StringVar(&cfg.ReceiptPath, "f", defaultReceiptPath, "path to the receipt file")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envCatalogPath != "" {
		cfg.CatalogPath = envCatalogPath
	}
	if envReceiptPath != "" {
		cfg.ReceiptPath = envReceiptPath
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = defaultCatalogPath
	}
	if cfg.ReceiptPath == "" {
		cfg.ReceiptPath = defaultReceiptPath
	}

	return cfg, nil
}
