package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/odoo-tools/addons-path/internal/layout"
	"github.com/odoo-tools/addons-path/internal/logging"
)

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the known layout conventions",
	Long: `List every layout convention the detection chain knows about, in
evaluation order. Detection stops at the first match, so order matters:
a codebase carrying two signatures resolves to the earlier one.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLayouts(cmd.OutOrStdout())
	},
}

func runLayouts(w io.Writer) error {
	chain := layout.NewChain(logging.NewDiscard())
	for _, d := range chain.Detectors() {
		fmt.Fprintf(w, "%-20s %s\n", d.Name(), d.Description())
	}
	return nil
}
