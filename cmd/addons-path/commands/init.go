package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/odoo-tools/addons-path/internal/config"
	"github.com/odoo-tools/addons-path/internal/paths"
	"github.com/odoo-tools/addons-path/pkg/fileutil"
)

var (
	initUser  bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initUser, "user", "u", false, "Write the user-level config instead of a project file")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an addons-path configuration file",
	Long: `Write an addons-path.toml capturing the directory overrides given on
the command line, so later invocations can drop the flags.

By default the file lands in the current directory and pins the
project's settings; with --user it goes to the user config directory
and applies everywhere.`,
	Example: `  # Pin the project's explicit directories
  addons-path init --addons-dirs ./external-src --odoo-dir ./odoo/src

  # Record a default codebase for every shell
  addons-path init --user

  # Overwrite an existing file
  addons-path init --force`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInit(cmd.OutOrStdout())
	},
}

func runInit(w io.Writer) error {
	configPath := config.FileName
	if initUser {
		configPath = config.UserConfigPath()
	}

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if initUser {
		if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
			return errors.Wrap(err, "creating config directory")
		}
	}

	// Flag values are stored verbatim: relative paths and globs stay
	// relative to wherever the file is later loaded from.
	fileCfg := config.Config{
		Codebase:   cfg.Codebase,
		AddonsDirs: paths.SplitList(addonsDirsFlag),
		AddonDirs:  paths.SplitList(addonDirsFlag),
		OdooDir:    odooDirFlag,
	}

	if err := fileutil.AtomicWriteTOML(configPath, &fileCfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}
