package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/fixed/cmd/fxeval/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "fxeval %s (%s)\n", version.String(), version.Runtime())
			return err
		},
	}
}
