package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/broker"
	"github.com/dmitrymomot/censussample/pkg/census"
	"github.com/dmitrymomot/censussample/pkg/loader"
	"github.com/dmitrymomot/censussample/pkg/redis"
	"github.com/dmitrymomot/censussample/pkg/report"
	"github.com/dmitrymomot/censussample/pkg/runid"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
	"github.com/dmitrymomot/censussample/pkg/validation"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <sample-file> <collection-exercise-id> <action-plan-id> <collection-instrument-id>",
		Short: "Validate a sample file and load it into the case queue and redis",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := runid.Ensure(cmd.Context())
			out := cmd.OutOrStdout()
			target := loader.Target{
				CollectionExerciseID:   args[1],
				ActionPlanID:           args[2],
				CollectionInstrumentID: args[3],
			}

			res, n, queue, err := a.loadSample(ctx, cmd, args[0], target)
			if errors.Is(err, loader.ErrInvalidSample) {
				if rerr := report.New(out, report.WithShowAll(true)).Render(res.Failures); rerr != nil {
					return rerr
				}
				return errFailures
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "All %d sample units have been added to the queue %s and Redis\n", n, queue)
			return nil
		},
	}
}

// loadSample runs loader.LoadFile and closes whatever it connected to,
// flushing the cache, before returning.
func (a *app) loadSample(ctx context.Context, cmd *cobra.Command, path string, target loader.Target) (res validation.Result, n int, queue string, err error) {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i](); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	connect := func(ctx context.Context) (*loader.Loader, error) {
		client, err := redis.Connect(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		closers = append(closers, client.Close)

		pub, err := broker.NewPublisher(a.cfg.Broker)
		if err != nil {
			return nil, err
		}
		closers = append(closers, pub.Close)

		cache := redis.NewPipelineWriter(client, a.cfg.Redis.PipelineBatch)
		closers = append(closers, func() error { return cache.Close(ctx) })

		queue = pub.Queue()
		fmt.Fprintf(cmd.OutOrStdout(), "Loading sample units to queue %s\n", queue)

		return loader.New(pub, cache,
			loader.WithLogger(a.log),
			loader.WithProgressEvery(a.cfg.LoadProgress),
			loader.WithProgress(func(n int) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d sample units loaded\n", n)
			}),
		), nil
	}

	res, n, err = loader.LoadFile(ctx, path, a.runner(cmd, a.cfg.ProgressEvery), census.NewSchema, target, connect,
		samplefile.WithEncoding(a.cfg.Encoding))
	return res, n, queue, err
}
