package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/census"
	"github.com/dmitrymomot/censussample/pkg/report"
	"github.com/dmitrymomot/censussample/pkg/runid"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
	"github.com/dmitrymomot/censussample/pkg/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	var flags struct {
		pageSize      int
		showAll       bool
		format        string
		progressEvery int
		encoding      string
	}

	cmd := &cobra.Command{
		Use:   "validate <sample-file>",
		Short: "Check a sample file against the census sample schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("page-size") {
				flags.pageSize = a.cfg.PageSize
			}
			if !cmd.Flags().Changed("progress-every") {
				flags.progressEvery = a.cfg.ProgressEvery
			}
			if !cmd.Flags().Changed("encoding") {
				flags.encoding = a.cfg.Encoding
			}

			format, err := report.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			ctx, _ := runid.Ensure(cmd.Context())
			res, err := a.runner(cmd, flags.progressEvery).ValidateFile(ctx, args[0], census.NewSchema,
				samplefile.WithEncoding(flags.encoding))
			if err != nil {
				return err
			}

			opts := []report.Option{
				report.WithFormat(format),
				report.WithPageSize(flags.pageSize),
				report.WithShowAll(flags.showAll),
			}
			if format == report.FormatText {
				opts = append(opts, report.WithConfirmer(report.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())))
			}
			if err := report.New(cmd.OutOrStdout(), opts...).Render(res.Failures); err != nil {
				return err
			}
			if !res.Valid() {
				return errFailures
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.pageSize, "page-size", report.DefaultPageSize, "Failures shown before asking to show the rest (env VALIDATION_PAGE_SIZE)")
	f.BoolVar(&flags.showAll, "show-all", false, "Show every failure without asking")
	f.StringVar(&flags.format, "format", string(report.FormatText), "Report format: text, json or yaml")
	f.IntVar(&flags.progressEvery, "progress-every", validation.DefaultProgressEvery, "Rows between progress lines, 0 to disable (env VALIDATION_PROGRESS_EVERY)")
	f.StringVar(&flags.encoding, "encoding", samplefile.DefaultEncoding, "Text encoding of the sample file (env SAMPLE_ENCODING)")

	return cmd
}

// runner builds a validation runner that prints progress to stderr.
func (a *app) runner(cmd *cobra.Command, every int) *validation.Runner {
	return validation.NewRunner(
		validation.WithLogger(a.log),
		validation.WithProgressEvery(every),
		validation.WithProgress(func(p validation.Progress) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d rows validated, %d failures so far\n", p.Rows, p.Failures)
		}),
	)
}
