package main

import (
	"fmt"
	"io"

	"github.com/dhamidi/levelspec/levelspec"
	"github.com/dhamidi/levelspec/listfile"
	"github.com/spf13/cobra"
)

func newMatchCmd(root *rootOptions) *cobra.Command {
	var caseMode string

	cmd := &cobra.Command{
		Use:   "match <pattern> [spec...]",
		Short: "Print the levelspecs selected by a wildcard pattern",
		Long: `Print the levelspecs selected by a wildcard pattern.

Without spec arguments, levelspecs are read one per line from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(caseMode)
			if err != nil {
				return err
			}
			opts := cfg.Options()

			pattern, err := levelspec.Parse(args[0], opts...)
			if err != nil {
				return fmt.Errorf("pattern: %w", err)
			}

			var candidates []listfile.Entry
			if len(args) > 1 {
				for i, arg := range args[1:] {
					e := listfile.Entry{Line: i + 1, Text: arg}
					e.Spec, e.Err = levelspec.Parse(arg, opts...)
					candidates = append(candidates, e)
				}
			} else {
				candidates, err = listfile.Read(cmd.InOrStdin(), opts...)
				if err != nil {
					return err
				}
			}

			return runMatch(cmd.OutOrStdout(), pattern, candidates)
		},
	}

	cmd.Flags().StringVar(&caseMode, "case", "", "case mode: strict or relaxed (default from config)")

	return cmd
}

// runMatch prints every candidate pattern selects. Unparsable candidates are
// an error.
func runMatch(w io.Writer, pattern levelspec.LevelSpec, candidates []listfile.Entry) error {
	for _, c := range candidates {
		if c.Err != nil {
			return c.Err
		}
		if pattern.Matches(c.Spec) {
			fmt.Fprintln(w, c.Spec)
		}
	}
	return nil
}
