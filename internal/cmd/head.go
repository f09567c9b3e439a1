package cmd

import (
	"flowsync/internal/meta"

	"github.com/spf13/cobra"
)

var headCmd = &cobra.Command{
	Use:   "head",
	Short: "Print the page <head> with title, preview and icon tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return meta.Default().WriteHTML(cmd.OutOrStdout())
	},
}
