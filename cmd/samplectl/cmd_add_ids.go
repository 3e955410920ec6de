package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/samplefile"
)

func newAddIDsCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "add-ids <sample-file>",
		Short: "Write a copy of a sample file with a leading CASE_ID column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer func() { _ = in.Close() }()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				w = f
			}

			n, err := samplefile.AddCaseIDs(in, w, nil, samplefile.WithEncoding(a.cfg.Encoding))
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Added case ids to %d rows in %s\n", n, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination path (default: stdout)")

	return cmd
}
