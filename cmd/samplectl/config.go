package main

import (
	"github.com/dmitrymomot/censussample/pkg/broker"
	"github.com/dmitrymomot/censussample/pkg/file"
	"github.com/dmitrymomot/censussample/pkg/redis"
)

// appConfig is read from the environment and an optional .env file.
type appConfig struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Encoding      string `env:"SAMPLE_ENCODING" envDefault:"utf-8"`
	PageSize      int    `env:"VALIDATION_PAGE_SIZE" envDefault:"20"`
	ProgressEvery int    `env:"VALIDATION_PROGRESS_EVERY" envDefault:"10000"`
	LoadProgress  int    `env:"LOAD_PROGRESS_EVERY" envDefault:"5000"`

	Redis  redis.Config
	Broker broker.Config
	Bucket file.S3Config
}
