package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/levelspec/config"
	"github.com/dhamidi/levelspec/format"
	"github.com/dhamidi/levelspec/levelspec"
	"github.com/spf13/cobra"
)

func newResolveCmd(root *rootOptions) *cobra.Command {
	var caseMode string
	var outputFormat string
	var context config.Context

	cmd := &cobra.Command{
		Use:   "resolve <spec>",
		Short: "Fill in the relative levels of a levelspec",
		Long: `Fill in the relative levels of a levelspec.

Each relative level takes its value from the matching flag, then from
LEVELSPEC_SHOW, LEVELSPEC_SEQUENCE or LEVELSPEC_SHOT, then from the context
section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(caseMode)
			if err != nil {
				return err
			}
			cfg.Context = cfg.Context.Merge(context)

			ls, err := levelspec.Parse(args[0], cfg.Options()...)
			if err != nil {
				return err
			}
			abs, err := ls.RelToAbs(cfg.Resolver())
			if err != nil {
				return fmt.Errorf("%s: %w", ls, err)
			}

			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return encoder.Encode(abs)
		},
	}

	cmd.Flags().StringVar(&caseMode, "case", "", "case mode: strict or relaxed (default from config)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().StringVar(&context.Show, "show", "", "show for a relative show level")
	cmd.Flags().StringVar(&context.Sequence, "sequence", "", "sequence for a relative sequence level")
	cmd.Flags().StringVar(&context.Shot, "shot", "", "shot for a relative shot level")

	return cmd
}
