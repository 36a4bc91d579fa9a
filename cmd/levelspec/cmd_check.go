package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/dhamidi/levelspec/levelspec"
	"github.com/dhamidi/levelspec/listfile"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var caseMode string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate levelspec list files",
		Long: `Validate levelspec list files.

Each file holds one levelspec per line. Blank lines and lines starting with #
are skipped. Every unparsable line is reported as file:line:column: error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(caseMode)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), args, cfg.Options()...)
		},
	}

	cmd.Flags().StringVar(&caseMode, "case", "", "case mode: strict or relaxed (default from config)")

	return cmd
}

// runCheck reads files in parallel and reports their invalid lines in file
// order.
func runCheck(ctx context.Context, w io.Writer, files []string, opts ...levelspec.Option) error {
	log := commonlog.GetLogger("levelspec.check")
	results := make([][]listfile.Entry, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries, err := listfile.ReadFile(file, opts...)
			if err != nil {
				return fmt.Errorf("check %s: %w", file, err)
			}
			log.Debugf("%s: %d levelspecs", file, len(entries))
			results[i] = listfile.Errors(entries)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	invalid := 0
	for i, failed := range results {
		for _, e := range failed {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", files[i], e.Line, e.Column+1, e.Err)
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid levelspecs", invalid)
	}
	return nil
}
