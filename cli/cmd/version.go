package cmd

import (
	"github.com/spf13/cobra"

	"github.com/solidground/facade/internal/ver"
)

func NewVersionCmd(parent *cobra.Command, version ver.Version) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version of the facade client",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(version.Format())
		},
	}

	parent.AddCommand(cmd)
}
