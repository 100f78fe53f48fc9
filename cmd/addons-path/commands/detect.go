package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/odoo-tools/addons-path/internal/errors"
	"github.com/odoo-tools/addons-path/internal/layout"
	"github.com/odoo-tools/addons-path/internal/logging"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [codebase]",
	Short: "Print the detected layout name",
	Long: `Run layout detection against the codebase and print only the name
of the matching convention. Override flags are ignored; this command
always runs the detection chain.`,
	Example: `  # Detect the layout of the current directory
  addons-path detect

  # Detect the layout of a specific checkout
  addons-path detect ~/src/customer-project`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetect(cmd.OutOrStdout(), logging.FromContext(cmd.Context()), args)
	},
}

func runDetect(w io.Writer, logger *slog.Logger, args []string) error {
	codebase, err := resolveCodebase(args)
	if err != nil {
		return err
	}

	match, err := layout.NewChain(logger).Detect(codebase)
	if err != nil {
		if errors.Is(err, layout.ErrNoLayout) {
			return errors.NewUserError(err,
				"the codebase matches no known convention and holds no addon manifest")
		}
		return errors.Wrap(err, "detecting layout")
	}

	fmt.Fprintln(w, match.Name)
	return nil
}
