package broker

type Config struct {
	RedisURL    string `env:"BROKER_REDIS_URL" envDefault:"redis://localhost:6379/1"`
	Queue       string `env:"BROKER_QUEUE" envDefault:"sample-units"`
	MaxRetry    int    `env:"BROKER_MAX_RETRY" envDefault:"3"`
	TLSInsecure bool   `env:"BROKER_REDIS_TLS_INSECURE" envDefault:"false"`
}
