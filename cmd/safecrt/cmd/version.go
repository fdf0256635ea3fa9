package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/safecrt/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// version needs neither configuration nor logging
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), titleStyle.Render("safecrt")+"\n"+version.Info())
		},
	}
}
