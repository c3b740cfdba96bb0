package config

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/couchcryptid/sounding-etl/internal/domain"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	WindFile string
	TempFile string

	LogLevel  string
	LogFormat string

	// Bulletin publication.
	KafkaEnabled        bool
	KafkaBrokers        []string
	KafkaBulletinTopic  string
	KafkaPublishTimeout time.Duration

	MetricsTextfile string
	ShutdownTimeout time.Duration

	Calibration Calibration
}

// Calibration holds the sensor calibration and ground observation constants.
type Calibration struct {
	A  float64 `env:"CALIB_A,default=1"`
	B  float64 `env:"CALIB_B,default=4000"`
	C  float64 `env:"CALIB_C,default=100"`
	R1 float64 `env:"CALIB_R1,default=32"`
	R2 float64 `env:"CALIB_R2,default=32"`

	T0 float64 `env:"GROUND_T0,default=10"`
	U0 float64 `env:"GROUND_U0,default=51"`
	P0 float64 `env:"GROUND_P0,default=993.331"`
}

// Constants converts the calibration into the form the computation takes.
func (c Calibration) Constants() domain.UserConstants {
	return domain.UserConstants{
		A: c.A, B: c.B, C: c.C,
		R1: c.R1, R2: c.R2,
		T0: c.T0, U0: c.U0, P0: c.P0,
	}
}

// Load reads configuration from environment variables, applying defaults where
// unset. A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var calib Calibration
	if err := envconfig.Process(context.Background(), &calib); err != nil {
		return nil, fmt.Errorf("parse calibration constants: %w", err)
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	publishTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("KAFKA_PUBLISH_TIMEOUT", "10s"))
	if err != nil || publishTimeout <= 0 {
		return nil, errors.New("invalid KAFKA_PUBLISH_TIMEOUT")
	}

	cfg := &Config{
		WindFile:            sharedcfg.EnvOrDefault("SOUNDING_WIND_FILE", "wind.csv"),
		TempFile:            sharedcfg.EnvOrDefault("SOUNDING_TEMP_FILE", "temp.csv"),
		LogLevel:            sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		KafkaEnabled:        os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:        sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaBulletinTopic:  sharedcfg.EnvOrDefault("KAFKA_BULLETIN_TOPIC", "sounding-bulletins"),
		KafkaPublishTimeout: publishTimeout,
		MetricsTextfile:     os.Getenv("METRICS_TEXTFILE"),
		ShutdownTimeout:     shutdownTimeout,
		Calibration:         calib,
	}

	if cfg.WindFile == "" {
		return nil, errors.New("SOUNDING_WIND_FILE is required")
	}
	if cfg.TempFile == "" {
		return nil, errors.New("SOUNDING_TEMP_FILE is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaBulletinTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BULLETIN_TOPIC is empty")
	}
	if math.Abs(calib.A) < domain.Epsilon {
		return nil, errors.New("CALIB_A must be non-zero")
	}
	if calib.P0 <= 0 {
		return nil, errors.New("GROUND_P0 must be positive")
	}

	return cfg, nil
}
