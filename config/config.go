package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Console ConsoleConfig `yaml:"console"`
	Tickets TicketsConfig `yaml:"tickets"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir" validate:"required"`
}

type ConsoleConfig struct {
	Width int  `yaml:"width" validate:"min=20"`
	Color bool `yaml:"color"`
	Pause bool `yaml:"pause"`
}

type TicketsConfig struct {
	CashRegisters int `yaml:"cash_registers" validate:"min=1"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// SlogLevel maps the configured level name onto slog.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RedisConfig enables the snapshot mirror when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"min=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// KafkaConfig enables event publishing when at least one broker is set.
type KafkaConfig struct {
	Brokers     []string `yaml:"brokers"`
	EventsTopic string   `yaml:"events_topic" validate:"required_with=Brokers"`
	GroupID     string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{DataDir: "Data"},
		Console: ConsoleConfig{Width: 80, Color: true, Pause: true},
		Tickets: TicketsConfig{CashRegisters: 9},
		Log:     LogConfig{Level: "info"},
		Kafka: KafkaConfig{
			EventsTopic: "airtransport.events",
			GroupID:     "airtransport-worker",
		},
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads path over Default. The returned error wraps fs.ErrNotExist when
// the file is missing, so callers can fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
