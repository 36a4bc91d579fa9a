package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/levelspec/config"
	"github.com/dhamidi/levelspec/levelspec"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    int
}

// loadConfig reads the config file and environment. caseMode, when set,
// overrides the configured case mode.
func (o *rootOptions) loadConfig(caseMode string) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if caseMode != "" {
		mode, err := levelspec.ParseCaseMode(caseMode)
		if err != nil {
			return nil, err
		}
		cfg.Case = mode
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "levelspec [spec]",
		Short:        "Parse and resolve show.sequence.shot levelspecs",
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			cfg, err := opts.loadConfig("")
			if err != nil {
				return err
			}
			ls, err := levelspec.Parse(args[0], cfg.Options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ls)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFile, "config file")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "log more (repeat for more detail)")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newMatchCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(opts))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
