// Package commands implements the CLI commands for addons-path.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/odoo-tools/addons-path/cmd"
	"github.com/odoo-tools/addons-path/internal/addons"
	"github.com/odoo-tools/addons-path/internal/config"
	"github.com/odoo-tools/addons-path/internal/errors"
	"github.com/odoo-tools/addons-path/internal/layout"
	"github.com/odoo-tools/addons-path/internal/logging"
	"github.com/odoo-tools/addons-path/internal/paths"
)

// addonsDirsFlag holds the value of the --addons-dirs flag.
var addonsDirsFlag string

// addonDirsFlag holds the value of the --addons-dir flag.
var addonDirsFlag string

// odooDirFlag holds the value of the --odoo-dir flag.
var odooDirFlag string

// jsonOutput holds the value of the --json flag.
var jsonOutput bool

// verbosity holds the count of -v flags. The first level switches the
// output to the categorized breakdown; higher counts raise the log level.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the loaded configuration; file and env values act as flag
// defaults.
var cfg = &config.Config{}

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Resolution flags are persistent so that subcommands (detect, init)
	// share them with the root resolution.
	rootCmd.PersistentFlags().StringVar(&addonsDirsFlag, "addons-dirs", "",
		"comma-separated directories containing addon repositories (bypasses detection)")
	rootCmd.PersistentFlags().StringVar(&addonDirsFlag, "addons-dir", "",
		"comma-separated directories directly containing addon modules (bypasses detection)")
	rootCmd.PersistentFlags().StringVar(&odooDirFlag, "odoo-dir", "",
		"Odoo core checkout; must exist when supplied (bypasses detection)")

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"output as JSON")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"categorized breakdown; repeat for debug logging (e.g., -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("addons-path version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	var loaded *config.Config
	loaded, configLoadErr = config.Load("")
	if configLoadErr == nil {
		cfg = loaded
	}
}

var rootCmd = &cobra.Command{
	Use:   "addons-path [codebase]",
	Short: "Print the Odoo addons_path for a project checkout",
	Long: `addons-path inspects an Odoo project checkout, detects which
directory-layout convention it follows (Trobz, Camptocamp, odoo.sh,
Doodba, or a generic fallback), and prints the resulting addons_path:
a comma-separated, deduplicated, deterministically ordered list of
absolute directories, with the Odoo core addon directories first.

The codebase defaults to the CODEBASE environment variable, then the
current directory. Supplying any of --addons-dirs, --addons-dir or
--odoo-dir bypasses detection entirely and builds the addons_path from
the given directories alone. Flag values accept ~ and glob patterns,
including **.`,
	Example: `  # Detect the layout of the current directory and print its addons_path
  addons-path

  # Same, for a specific checkout
  addons-path ~/src/customer-project

  # Bypass detection with explicit directories
  addons-path --addons-dirs ./external-src --odoo-dir ./odoo/src

  # Categorized breakdown instead of the flat list
  addons-path -v ~/src/customer-project

  # Machine-readable output for scripting
  addons-path --json

  See Also: addons-path detect, addons-path layouts, addons-path init`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		return runResolve(cobraCmd.OutOrStdout(), logging.FromContext(cobraCmd.Context()), args)
	},
}

// setupLogging configures the default logger based on verbosity flags.
// The first -v belongs to the breakdown output, so logging starts one
// step lower than the raw count.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("ADDONS_PATH_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// resolveCodebase turns the optional positional argument into an absolute
// existing directory. Precedence: argument, then the codebase config/env
// value, then the current directory.
func resolveCodebase(args []string) (string, error) {
	codebase := "."
	switch {
	case len(args) > 0 && args[0] != "":
		codebase = args[0]
	case cfg.Codebase != "":
		codebase = cfg.Codebase
	}

	expanded, err := paths.ExpandUser(codebase)
	if err != nil {
		return "", errors.NewUserError(err, "check the codebase path")
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "resolving codebase %s", codebase)
	}
	if !paths.IsDir(abs) {
		return "", errors.NewUserError(
			errors.Newf("codebase %s is not a directory", abs),
			"pass an existing Odoo project directory")
	}
	return abs, nil
}

// resolveOptions assembles the aggregator options from flags, falling back
// to config values where a flag was left unset. Addon directory entries go
// through ~ and glob expansion; the core checkout must exist when supplied.
func resolveOptions(logger *slog.Logger) (addons.Options, error) {
	opts := addons.Options{Logger: logger}

	addonsDirs := paths.SplitList(addonsDirsFlag)
	if len(addonsDirs) == 0 {
		addonsDirs = cfg.AddonsDirs
	}
	addonDirs := paths.SplitList(addonDirsFlag)
	if len(addonDirs) == 0 {
		addonDirs = cfg.AddonDirs
	}

	var err error
	opts.AddonsDirs, err = paths.ExpandPatterns(addonsDirs)
	if err != nil {
		return opts, errors.NewUserError(err, "check the --addons-dirs value")
	}
	opts.AddonDirs, err = paths.ExpandPatterns(addonDirs)
	if err != nil {
		return opts, errors.NewUserError(err, "check the --addons-dir value")
	}

	odooDir := odooDirFlag
	if odooDir == "" {
		odooDir = cfg.OdooDir
	}
	if odooDir != "" {
		expanded, err := paths.ExpandUser(odooDir)
		if err != nil {
			return opts, errors.NewUserError(err, "check the --odoo-dir value")
		}
		if !paths.IsDir(expanded) {
			return opts, errors.NewUserError(
				errors.Newf("odoo dir %s is not a directory", expanded),
				"point --odoo-dir at an existing Odoo checkout")
		}
		opts.OdooDir = expanded
	}

	return opts, nil
}

// runResolve is the root command body, split out so tests can inject the
// writer and logger.
func runResolve(w io.Writer, logger *slog.Logger, args []string) error {
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "check the addons-path.toml syntax")
	}

	codebase, err := resolveCodebase(args)
	if err != nil {
		return err
	}

	opts, err := resolveOptions(logger)
	if err != nil {
		return err
	}

	result, err := addons.Resolve(codebase, opts)
	if err != nil {
		if errors.Is(err, layout.ErrNoLayout) {
			return errors.NewUserError(err,
				"pass --addons-dirs, --addons-dir or --odoo-dir to bypass detection")
		}
		return errors.Wrap(err, "resolving addons path")
	}

	if jsonOutput {
		return writeResolveJSON(w, result)
	}
	if verbosity > 0 {
		writeResolveVerbose(w, result)
		return nil
	}
	fmt.Fprintln(w, result.String())
	return nil
}

// resolveJSONOutput is the --json rendering of a resolution.
type resolveJSONOutput struct {
	Layout            string   `json:"layout,omitempty"`
	OdooDirs          []string `json:"odoo_dirs"`
	AddonRepositories []string `json:"addon_repositories"`
	AddonsPath        []string `json:"addons_path"`
}

func writeResolveJSON(w io.Writer, result *addons.Result) error {
	output := resolveJSONOutput{
		Layout:            result.Layout,
		OdooDirs:          result.OdooDirs,
		AddonRepositories: result.Repositories,
		AddonsPath:        result.Paths(),
	}
	if output.OdooDirs == nil {
		output.OdooDirs = []string{}
	}
	if output.AddonRepositories == nil {
		output.AddonRepositories = []string{}
	}
	if output.AddonsPath == nil {
		output.AddonsPath = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// writeResolveVerbose prints the categorized breakdown: the detected
// layout (when detection ran), the core directories, the repository
// roots, and the final comma-joined path.
func writeResolveVerbose(w io.Writer, result *addons.Result) {
	header := color.New(color.FgCyan, color.Bold)

	if result.Layout != "" {
		fmt.Fprintf(w, "layout: %s\n", result.Layout)
		fmt.Fprintln(w)
	}

	header.Fprintln(w, "# odoo_dir")
	for _, dir := range result.OdooDirs {
		fmt.Fprintln(w, dir)
	}
	fmt.Fprintln(w)

	header.Fprintln(w, "# addon_repositories")
	for _, repo := range result.Repositories {
		fmt.Fprintln(w, repo)
	}
	fmt.Fprintln(w)

	header.Fprintln(w, "# addons_path")
	fmt.Fprintln(w, result.String())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
