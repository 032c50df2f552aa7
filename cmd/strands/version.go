package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/strands"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strands.ReadBuildInfo().String())
			return err
		},
	}
}
