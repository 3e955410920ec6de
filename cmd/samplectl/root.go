package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/config"
	"github.com/dmitrymomot/censussample/pkg/logger"
	"github.com/dmitrymomot/censussample/pkg/runid"
)

// errFailures marks a command that ran fine but found problems in the
// input. The failures are already printed.
var errFailures = errors.New("sample file has failures")

// app carries what every subcommand needs once the root has set it up.
type app struct {
	cfg     appConfig
	log     *slog.Logger
	envFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "samplectl",
		Short: "Validate and load census sample files",
		Long: "samplectl checks census sample files against the sample schema\n" +
			"and loads valid samples into the case queue and the sample unit cache.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Extra env file to read before the environment")

	root.AddCommand(
		newValidateCmd(a),
		newLoadCmd(a),
		newDownloadCmd(a),
		newCompareCmd(a),
		newAddIDsCmd(a),
		newUpdateFormatCmd(a),
		newPingCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	env := logger.ParseEnvironment(a.cfg.AppEnv)
	opts := []logger.Option{
		logger.WithEnvironment(env, "samplectl"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	}
	if a.cfg.LogLevel != "" {
		level, err := logger.ParseLevel(a.cfg.LogLevel, slog.LevelInfo)
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if a.cfg.LogFormat != "" {
		switch f := logger.Format(a.cfg.LogFormat); f {
		case logger.FormatJSON, logger.FormatText:
			opts = append(opts, logger.WithFormat(f))
		default:
			return fmt.Errorf("invalid LOG_FORMAT %q", a.cfg.LogFormat)
		}
	}
	a.log = logger.New(opts...)
	return nil
}
