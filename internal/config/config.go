// Package config provides configuration management for addons-path using Viper.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/odoo-tools/addons-path/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "addons-path"

// FileName is the config file base name (addons-path.toml).
const FileName = AppName + ".toml"

// Config represents the configuration file structure. Every field doubles
// as a default for the corresponding CLI flag; flags win when both are set.
type Config struct {
	// Codebase is the default project root to analyze.
	Codebase string `mapstructure:"codebase" toml:"codebase,omitempty"`

	// AddonsDirs are directories containing addon repositories.
	AddonsDirs []string `mapstructure:"addons_dirs" toml:"addons_dirs,omitempty"`

	// AddonDirs are directories directly containing addon modules.
	AddonDirs []string `mapstructure:"addon_dirs" toml:"addon_dirs,omitempty"`

	// OdooDir is the Odoo core checkout.
	OdooDir string `mapstructure:"odoo_dir" toml:"odoo_dir,omitempty"`
}

// Init initializes Viper with defaults, search paths and env bindings.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(AppName)
	viper.SetConfigType("toml")

	// Search paths (in order of precedence): a project-pinned file first,
	// then the user-level one.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support: ADDONS_PATH_ODOO_DIR etc., plus the
	// bare CODEBASE variable the tool has always honored.
	viper.SetEnvPrefix("ADDONS_PATH")
	viper.AutomaticEnv()
	// Bound explicitly so Unmarshal sees the keys even when they only
	// come from the environment.
	_ = viper.BindEnv("codebase", "ADDONS_PATH_CODEBASE", "CODEBASE")
	_ = viper.BindEnv("addons_dirs")
	_ = viper.BindEnv("addon_dirs")
	_ = viper.BindEnv("odoo_dir")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user named a file, its absence is an error; an
			// implicit load falls back to defaults.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// UserConfigPath returns the user-level config file location:
// <ConfigHome>/addons-path/addons-path.toml.
func UserConfigPath() string {
	return filepath.Join(paths.ConfigHome(), AppName, FileName)
}
