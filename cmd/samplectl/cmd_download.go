package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/censussample/pkg/file"
	"github.com/dmitrymomot/censussample/pkg/logger"
)

func newDownloadCmd(a *app) *cobra.Command {
	var flags struct {
		out string
		dir string
	}

	cmd := &cobra.Command{
		Use:   "download <key>",
		Short: "Download a sample file from the sample bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				store  file.Storage
				source string
			)
			if flags.dir != "" {
				local, err := file.NewLocalStorage(flags.dir)
				if err != nil {
					return err
				}
				store, source = local, flags.dir
			} else {
				s3, err := file.NewS3Storage(ctx, a.cfg.Bucket)
				if err != nil {
					return fmt.Errorf("sample bucket: %w", err)
				}
				store, source = s3, s3.Bucket()
			}

			out := flags.out
			if out == "" {
				out = filepath.Base(args[0])
			}
			n, err := file.DownloadToFile(ctx, store, args[0], out)
			if err != nil {
				return err
			}

			a.log.InfoContext(ctx, "sample downloaded", logger.File(args[0]), logger.Component("download"))
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s (%d bytes) from %s to %s\n", args[0], n, source, out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.out, "out", "o", "", "Destination path (default: base name of the key)")
	f.StringVar(&flags.dir, "dir", "", "Read from a local directory instead of the bucket")

	return cmd
}
