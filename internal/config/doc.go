// Package config provides configuration management for the addons-path CLI.
//
// # Configuration File
//
// Configuration is read from addons-path.toml, looked up first in the
// current directory (a project can pin its own overrides) and then in
// ~/.config/addons-path/. The file uses TOML:
//
//	codebase = "/srv/odoo/project"
//	addons_dirs = ["./external-src"]
//	addon_dirs = ["./local-src"]
//	odoo_dir = "./odoo/src"
//
// Every value doubles as a default for the matching CLI flag; an explicit
// flag always wins.
//
// # Environment Variables
//
// Values can also come from ADDONS_PATH_* environment variables
// (ADDONS_PATH_ODOO_DIR, ...). The codebase additionally honors the bare
// CODEBASE variable.
package config
