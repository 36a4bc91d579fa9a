package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/levelspec/format"
	"github.com/dhamidi/levelspec/levelspec"
	"github.com/spf13/cobra"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var caseMode string
	var outputFormat string
	var upper bool

	cmd := &cobra.Command{
		Use:   "parse <spec>...",
		Short: "Parse levelspecs and print them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig(caseMode)
			if err != nil {
				return err
			}
			encoder, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			for _, arg := range args {
				ls, err := levelspec.Parse(arg, cfg.Options()...)
				if err != nil {
					return err
				}
				if upper {
					ls.SetUpper()
				}
				if err := encoder.Encode(ls); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&caseMode, "case", "", "case mode: strict or relaxed (default from config)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().BoolVar(&upper, "upper", false, "uppercase every name")

	return cmd
}
