package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/census"
	"github.com/dmitrymomot/censussample/pkg/samplefile"
)

func newUpdateFormatCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "update-format <sample-file>",
		Short: "Rewrite an older sample file to the current column set",
		Long: "update-format writes a copy of a sample file with the current header.\n" +
			"Columns older files lack are added with their default, CE_SECURE as 0.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if out == "" {
				out = args[0] + ".new"
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer func() { _ = in.Close() }()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = cerr
				}
				if err != nil {
					_ = os.Remove(out)
				}
			}()

			n, err := samplefile.UpdateFormat(in, f, census.Columns(), census.FormatDefaults(),
				samplefile.WithEncoding(a.cfg.Encoding))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d rows to the current format in %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination path (default: <sample-file>.new)")

	return cmd
}
