package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config хранит все параметры приложения.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	HTTP     HTTPConfig     `yaml:"http"`
	POS      POSConfig      `yaml:"pos"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type POSConfig struct {
	VATRate  string `yaml:"vat_rate"`
	Currency string `yaml:"currency"`
}

// VAT parses the configured rate. The rate is fixed per deployment, not per
// order.
func (p POSConfig) VAT() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(p.VATRate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid pos.vat_rate %q: %w", p.VATRate, err)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("invalid pos.vat_rate %q: negative", p.VATRate)
	}
	return rate, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable", MaxConns: 10},
		RabbitMQ: RabbitMQConfig{Port: 5672, VHost: "/"},
		HTTP:     HTTPConfig{Port: 3000},
		POS:      POSConfig{VATRate: "0.10", Currency: "USD"},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.Database == "" {
		return nil, errors.New("invalid config: database host/user/database are required")
	}
	if cfg.RabbitMQ.Host == "" {
		return nil, errors.New("invalid config: rabbitmq host is required")
	}
	if _, err := cfg.POS.VAT(); err != nil {
		return nil, err
	}
	return cfg, nil
}
