package redis

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultPipelineBatch is how many writes are buffered before the
// pipeline is sent when no batch size is configured.
const DefaultPipelineBatch = 1000

// PipelineWriter buffers SET commands in a redis pipeline and sends them
// every batch writes and on Close. It is safe for concurrent use.
type PipelineWriter struct {
	mu     sync.Mutex
	client redis.UniversalClient
	pipe   redis.Pipeliner
	batch  int
	sent   int
	closed bool
}

// NewPipelineWriter returns a writer flushing every batch writes. A batch
// below one falls back to DefaultPipelineBatch.
func NewPipelineWriter(client redis.UniversalClient, batch int) *PipelineWriter {
	if batch < 1 {
		batch = DefaultPipelineBatch
	}
	return &PipelineWriter{
		client: client,
		pipe:   client.Pipeline(),
		batch:  batch,
	}
}

// Set queues key=value without expiry.
func (w *PipelineWriter) Set(ctx context.Context, key string, value []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrPipelineClosed
	}
	w.pipe.Set(ctx, key, value, 0)
	if w.pipe.Len() >= w.batch {
		return w.flush(ctx)
	}
	return nil
}

// Flush sends the queued commands.
func (w *PipelineWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrPipelineClosed
	}
	return w.flush(ctx)
}

// Close sends what is left and rejects further writes.
func (w *PipelineWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	return w.flush(ctx)
}

// Sent returns how many commands reached the server.
func (w *PipelineWriter) Sent() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sent
}

func (w *PipelineWriter) flush(ctx context.Context) error {
	n := w.pipe.Len()
	if n == 0 {
		return nil
	}
	if _, err := w.pipe.Exec(ctx); err != nil {
		return errors.Join(ErrPipelineExec, err)
	}
	w.sent += n
	return nil
}
