package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/compare"
	"github.com/dmitrymomot/censussample/pkg/report"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <original-file> <updated-file>",
		Short: "Check an updated CE/SPG sample only changed field assignments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, closeOriginal, err := openSample(args[0], a.cfg.Encoding)
			if err != nil {
				return err
			}
			defer closeOriginal()

			updated, closeUpdated, err := openSample(args[1], a.cfg.Encoding)
			if err != nil {
				return err
			}
			defer closeUpdated()

			failures, err := compare.Files(cmd.Context(), original, updated)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.New(out, report.WithShowAll(true)).Render(failures); err != nil {
				return err
			}
			if !failures.IsEmpty() {
				fmt.Fprintln(out, "This file has FAILED validation")
				return errFailures
			}
			fmt.Fprintln(out, "This file has PASSED validation")
			return nil
		},
	}
}

func openSample(path, encoding string) (*samplefile.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	r, err := samplefile.Open(f, samplefile.WithEncoding(encoding))
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, func() { _ = f.Close() }, nil
}
