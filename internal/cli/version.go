package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linktime/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderMessage(fmt.Sprintf("linktime version %s (commit %s, built %s)",
				version.Version, version.Commit, version.Date))
		},
	}
}
