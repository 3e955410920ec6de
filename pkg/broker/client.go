package broker

import (
	"context"
	"crypto/tls"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Publisher puts sample unit tasks on a queue.
type Publisher struct {
	client   Enqueuer
	queue    string
	maxRetry int
}

// NewPublisher connects an asynq client to the broker redis.
func NewPublisher(cfg Config) (*Publisher, error) {
	if cfg.RedisURL == "" {
		return nil, ErrEmptyRedisURL
	}
	opt, err := redisClientOpt(cfg.RedisURL, cfg.TLSInsecure)
	if err != nil {
		return nil, err
	}
	return NewPublisherWithClient(asynq.NewClient(opt), cfg.Queue, cfg.MaxRetry), nil
}

// NewPublisherWithClient wraps an existing enqueuer. An empty queue is the
// asynq default queue.
func NewPublisherWithClient(client Enqueuer, queue string, maxRetry int) *Publisher {
	if queue == "" {
		queue = "default"
	}
	return &Publisher{client: client, queue: queue, maxRetry: maxRetry}
}

// Queue returns the name of the queue tasks are published to.
func (p *Publisher) Queue() string {
	return p.queue
}

// Publish enqueues one sample unit. The sample unit id doubles as the task
// id, so a unit published twice is rejected by the broker.
func (p *Publisher) Publish(ctx context.Context, payload SampleUnitPayload) error {
	task, err := NewSampleUnitTask(payload)
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.Queue(p.queue), asynq.MaxRetry(p.maxRetry)}
	if payload.SampleUnitID != "" {
		opts = append(opts, asynq.TaskID(payload.SampleUnitID))
	}

	if _, err := p.client.EnqueueContext(ctx, task, opts...); err != nil {
		return errors.Join(ErrPublish, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, errors.Join(ErrInvalidRedisURL, err)
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		tlsConfig = opt.TLSConfig.Clone()
		tlsConfig.InsecureSkipVerify = tlsInsecure
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
