package main

import (
	"github.com/dhamidi/levelspec/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for levelspec list files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, root.configPath)
			return server.RunStdio()
		},
	}
}
