package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/go-playground/validator/v10"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	APIBaseURL      string `validate:"required,url"`
	HTTPAddr        string
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFormat       string `validate:"oneof=json text"`
	ShutdownTimeout time.Duration

	// AutoRefreshInterval re-fetches the list periodically; 0 disables it.
	AutoRefreshInterval time.Duration `validate:"gte=0"`

	BreakerEnabled bool

	// Deletion audit, enabled when KafkaBrokers is non-empty.
	KafkaBrokers    []string
	KafkaAuditTopic string
	AuditEnabled    bool

	// MockAPIAddr is only used by cmd/mockapi.
	MockAPIAddr string
}

// envNames maps struct fields to the variables they are read from, so
// validation errors point at something the operator can change.
var envNames = map[string]string{
	"APIBaseURL":          "DEKAT_API_BASE_URL",
	"LogLevel":            "LOG_LEVEL",
	"LogFormat":           "LOG_FORMAT",
	"AutoRefreshInterval": "AUTO_REFRESH_INTERVAL",
}

var validate = validator.New()

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	refreshStr := sharedcfg.EnvOrDefault("AUTO_REFRESH_INTERVAL", "0s")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, errors.New("invalid AUTO_REFRESH_INTERVAL")
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		APIBaseURL:          sharedcfg.EnvOrDefault("DEKAT_API_BASE_URL", "http://localhost:8081"),
		HTTPAddr:            os.Getenv("HTTP_ADDR"),
		LogLevel:            sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           sharedcfg.EnvOrDefault("LOG_FORMAT", "text"),
		ShutdownTimeout:     shutdownTimeout,
		AutoRefreshInterval: refreshInterval,
		BreakerEnabled:      os.Getenv("BREAKER_ENABLED") == "true",
		KafkaBrokers:        brokers,
		KafkaAuditTopic:     sharedcfg.EnvOrDefault("KAFKA_AUDIT_TOPIC", "cuaca-deletions"),
		AuditEnabled:        len(brokers) > 0,
		MockAPIAddr:         sharedcfg.EnvOrDefault("MOCKAPI_ADDR", ":8081"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, describe(err)
	}
	if cfg.AuditEnabled && cfg.KafkaAuditTopic == "" {
		return nil, errors.New("KAFKA_AUDIT_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

// describe rewrites the first validation failure in terms of its env variable.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	name, ok := envNames[fe.StructField()]
	if !ok {
		name = fe.StructField()
	}
	return fmt.Errorf("invalid %s: %q fails %q", name, fmt.Sprint(fe.Value()), fe.Tag())
}
