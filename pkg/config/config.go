package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Data struct {
		Backend   string `yaml:"backend"` // csv or clickhouse
		Dir       string `yaml:"dir"`
		StartDate string `yaml:"start_date"` // rows before this date are dropped at load
	} `yaml:"data"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Cache struct {
		SignalTTL  time.Duration `yaml:"signal_ttl"`
		SessionTTL time.Duration `yaml:"session_ttl"`
		MemoryMax  int           `yaml:"memory_max"`
		Redis      struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled  bool     `yaml:"enabled"`
		Brokers  []string `yaml:"brokers"`
		Topic    string   `yaml:"topic"`
		Consumer struct {
			GroupID    string        `yaml:"group_id"`
			Workers    int           `yaml:"workers"`
			BufferSize int           `yaml:"buffer_size"`
			RetryMax   int           `yaml:"retry_max"`
			BackoffMin time.Duration `yaml:"backoff_min"`
			BackoffMax time.Duration `yaml:"backoff_max"`
			DLQTopic   string        `yaml:"dlq_topic"`
			MinBytes   int           `yaml:"min_bytes"`
			MaxBytes   int           `yaml:"max_bytes"`
		} `yaml:"consumer"`
	} `yaml:"kafka"`
	Collaborators struct {
		NewsServiceURL      string        `yaml:"news_service_url"`
		SentimentServiceURL string        `yaml:"sentiment_service_url"`
		Timeout             time.Duration `yaml:"timeout"`
	} `yaml:"collaborators"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("DATA_BACKEND"); v != "" {
		c.Data.Backend = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
		c.Cache.Redis.Enabled = true
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("NEWS_SERVICE_URL"); v != "" {
		c.Collaborators.NewsServiceURL = v
	}
	if v := os.Getenv("SENTIMENT_SERVICE_URL"); v != "" {
		c.Collaborators.SentimentServiceURL = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Data.Backend == "" {
		c.Data.Backend = "csv"
	}
	if c.Data.Backend != "csv" && c.Data.Backend != "clickhouse" {
		return fmt.Errorf("data.backend must be 'csv' or 'clickhouse', got '%s'", c.Data.Backend)
	}
	if c.Data.Backend == "csv" && c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required for the csv backend")
	}
	if c.Data.Backend == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for the clickhouse backend")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	return nil
}
