package config

import (
	"fmt"
	"os"
)

// DatabaseConfig holds the Postgres connection values.
type DatabaseConfig struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// RedisConfig holds the Redis connection values.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// BucketConfig holds the S3 compatible bucket used for the job logs.
type BucketConfig struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Config is the full application configuration, loaded from the environment.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Bucket   BucketConfig
}

// Load reads the configuration from the environment.
// The main should load the .env file first when not running on Docker.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			DSN:            os.Getenv("DATABASE_URL"),
			Database:       os.Getenv("DATABASE_NAME"),
			MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfig{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_BUCKET"),
		},
	}

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "pkg/database/migrations"
	}

	return cfg, nil
}
