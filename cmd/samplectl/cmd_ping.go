package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/censussample/pkg/logger"
	"github.com/dmitrymomot/censussample/pkg/redis"
)

type pingResult struct {
	name    string
	elapsed time.Duration
	err     error
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the sample unit cache and the case queue are reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			targets := []struct {
				name string
				cfg  redis.Config
			}{
				{"cache", a.cfg.Redis},
				{"queue", redis.Config{
					ConnectionURL:  a.cfg.Broker.RedisURL,
					RetryAttempts:  a.cfg.Redis.RetryAttempts,
					RetryInterval:  a.cfg.Redis.RetryInterval,
					ConnectTimeout: a.cfg.Redis.ConnectTimeout,
				}},
			}

			// Every target is checked and printed; the first failure is returned.
			results := make([]pingResult, len(targets))
			var g errgroup.Group
			for i, target := range targets {
				g.Go(func() error {
					start := time.Now()
					err := ping(ctx, target.cfg)
					results[i] = pingResult{name: target.name, elapsed: time.Since(start), err: err}
					if err != nil {
						return fmt.Errorf("%s: %w", target.name, err)
					}
					return nil
				})
			}
			err := g.Wait()

			for _, res := range results {
				if res.err != nil {
					a.log.ErrorContext(ctx, "redis unreachable", logger.Component(res.name), logger.Error(res.err))
					fmt.Fprintf(cmd.OutOrStdout(), "%s: unreachable\n", res.name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", res.name, res.elapsed.Round(time.Millisecond))
			}
			return err
		},
	}
}

func ping(ctx context.Context, cfg redis.Config) error {
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	return redis.Healthcheck(client)(ctx)
}
