package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrNotADirectory indicates the path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFile returns true if the path exists and is a regular file.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Resolve returns the canonical absolute form of path: absolute, cleaned,
// with symlinks evaluated. When the path (or one of its ancestors) does not
// exist, symlink evaluation is skipped and the cleaned absolute path is
// returned instead. Two different spellings of the same real directory
// resolve to the same string, which is what deduplication keys on.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, nil
	}
	return real, nil
}

// ExpandUser replaces a leading ~ or ~/ with the user's home directory.
// Paths without a tilde prefix are returned unchanged.
func ExpandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// SplitList splits a comma-separated path list, trimming whitespace and
// dropping empty entries.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExpandPatterns expands each entry of the given list into concrete existing
// directories. Entries are ~-expanded first. An entry containing glob
// metacharacters (including **) is matched with doublestar against the
// filesystem and each matching directory is kept, in the order matched.
// A literal entry is kept as-is whether or not it exists; missing paths are
// the aggregator's problem, not the expander's.
func ExpandPatterns(entries []string) ([]string, error) {
	var out []string
	for _, entry := range entries {
		expanded, err := ExpandUser(entry)
		if err != nil {
			return nil, err
		}

		if !hasGlobMeta(expanded) {
			out = append(out, expanded)
			continue
		}

		matches, err := doublestar.FilepathGlob(expanded)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding pattern %s", entry)
		}
		for _, m := range matches {
			if IsDir(m) {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

// hasGlobMeta reports whether the path contains glob metacharacters.
func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// IsWithin returns true when path is inside parent (or equal to it).
// Both arguments must already be absolute and cleaned; no filesystem
// access happens here.
func IsWithin(path, parent string) bool {
	if path == parent {
		return true
	}
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
