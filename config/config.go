package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL    string `envconfig:"DATABASE_URL"     required:"true"`
	HTTPPort       string `envconfig:"HTTP_PORT"        default:":8080"`
	GrpcPort       string `envconfig:"GRPC_PORT"        default:":50051"` // gRPC health endpoint
	LogLevel       string `envconfig:"LOG_LEVEL"        default:"info"`
	SeedSampleData bool   `envconfig:"SEED_SAMPLE_DATA" default:"true"`
}

var (
	config Config
	once   sync.Once
)

// Load reads an optional .env file and then the process environment.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return &cfg, nil
}

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load(logger)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s, SeedSampleData=%t",
			config.HTTPPort, config.GrpcPort, config.LogLevel, config.SeedSampleData)
		logger.Info("Configuration loaded: DatabaseURL is set")
	})
	return &config
}
