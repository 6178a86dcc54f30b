package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Checkout    CheckoutConfig    `yaml:"checkout"`
	Payment     PaymentConfig     `yaml:"payment"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	Redis       RedisConfig       `yaml:"redis"`
	Idempotency IdempotencyConfig `yaml:"idempotency"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
	CreateSchema    bool          `yaml:"createSchema"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CheckoutConfig struct {
	CatalogConcurrency int           `yaml:"catalogConcurrency"`
	WriteTimeout       time.Duration `yaml:"writeTimeout"`
	MaxRetryAttempts   int           `yaml:"maxRetryAttempts"`
}

type PaymentConfig struct {
	ApprovalThreshold float64 `yaml:"approvalThreshold"`
}

type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	OrdersTopic string   `yaml:"ordersTopic"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type IdempotencyConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "storefront")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "storefront")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("DB_CREATE_SCHEMA", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CHECKOUT_CATALOG_CONCURRENCY", 8)
	v.SetDefault("CHECKOUT_WRITE_TIMEOUT", "5s")
	v.SetDefault("CHECKOUT_MAX_RETRY_ATTEMPTS", 3)
	v.SetDefault("PAYMENT_APPROVAL_THRESHOLD", 100)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDERS_TOPIC", "orders")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("METRICS_NAMESPACE", "storefront")

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	writeTimeout, err := time.ParseDuration(v.GetString("CHECKOUT_WRITE_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	idempotencyTTL, err := time.ParseDuration(v.GetString("IDEMPOTENCY_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("DB_DRIVER"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			CreateSchema:    v.GetBool("DB_CREATE_SCHEMA"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Checkout: CheckoutConfig{
			CatalogConcurrency: v.GetInt("CHECKOUT_CATALOG_CONCURRENCY"),
			WriteTimeout:       writeTimeout,
			MaxRetryAttempts:   v.GetInt("CHECKOUT_MAX_RETRY_ATTEMPTS"),
		},
		Payment: PaymentConfig{
			ApprovalThreshold: v.GetFloat64("PAYMENT_APPROVAL_THRESHOLD"),
		},
		Kafka: KafkaConfig{
			Brokers:     splitCSV(v.GetString("KAFKA_BROKERS")),
			OrdersTopic: v.GetString("KAFKA_ORDERS_TOPIC"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Idempotency: IdempotencyConfig{
			TTL: idempotencyTTL,
		},
		Metrics: MetricsConfig{
			Namespace: v.GetString("METRICS_NAMESPACE"),
		},
	}

	return cfg, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
