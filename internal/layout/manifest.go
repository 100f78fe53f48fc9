package layout

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ManifestFile is the marker whose presence identifies an Odoo addon
// directory.
const ManifestFile = "__manifest__.py"

// setupDir is the packaging-metadata convention used by OCA repositories;
// manifests below it are duplicates of real addons and are never counted.
const setupDir = "setup"

// FindManifests walks dir and returns the path of every manifest file
// beneath it, in lexical order. Subtrees under a directory literally named
// "setup" are skipped entirely. Unreadable subtrees are logged and skipped,
// never fatal.
func FindManifests(dir string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	var manifests []string
	// filepath.WalkDir visits entries in lexical order, which keeps the
	// result deterministic for a fixed tree.
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if d.Name() == setupDir {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == ManifestFile {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		// WalkDir only propagates what the callback returns, and the
		// callback never returns an error; keep the log as a tripwire.
		logger.Warn("manifest walk aborted", "dir", dir, "error", err)
	}
	return manifests
}

// RepoRoot returns the addon-repository root for a manifest path: the
// manifest's parent is the addon module, the module's parent is the
// repository.
func RepoRoot(manifestPath string) string {
	return filepath.Dir(filepath.Dir(manifestPath))
}

// subdirs lists the immediate subdirectories of dir, in lexical order.
// A missing or unreadable dir yields nil.
func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}
