// Package redis connects to the Redis cache that holds sample units and
// writes to it in pipelined batches.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	w := redis.NewPipelineWriter(client, cfg.PipelineBatch)
//	defer w.Close(ctx)
//	err = w.Set(ctx, "sample_unit:"+id, payload)
//
// Config is populated from REDIS_* environment variables through
// github.com/caarlos0/env. Sentinel errors wrap go-redis errors with
// errors.Join.
package redis
