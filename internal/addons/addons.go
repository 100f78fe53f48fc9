package addons

import (
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/odoo-tools/addons-path/internal/layout"
	"github.com/odoo-tools/addons-path/internal/paths"
)

// Options carries the explicit overrides for a resolution. All paths must
// already be concrete: comma-splitting, ~ expansion and glob expansion are
// the CLI's job.
type Options struct {
	// AddonsDirs are directories that contain addon repositories.
	AddonsDirs []string

	// AddonDirs are directories that directly contain addon modules.
	// They are expanded after AddonsDirs, in the given order.
	AddonDirs []string

	// OdooDir is the Odoo core checkout. When set it wins over any core
	// the detected layout designates.
	OdooDir string

	// Logger receives debug/trace output. Defaults to slog.Default().
	Logger *slog.Logger
}

// explicit reports whether any override was supplied. Detection is a full
// bypass: the presence of a single override suppresses it entirely.
func (o Options) explicit() bool {
	return len(o.AddonsDirs) > 0 || len(o.AddonDirs) > 0 || o.OdooDir != ""
}

// Result is the outcome of a resolution. It is constructed once and not
// mutated afterwards.
type Result struct {
	// Layout is the name of the detected layout, empty when detection was
	// bypassed by explicit overrides.
	Layout string

	// OdooDirs are the Odoo core addon directories, in derivation order.
	OdooDirs []string

	// Repositories are the discovered addon-repository roots: absolute,
	// symlink-resolved, deduplicated. Sorted lexicographically when they
	// came from detection; in input order when they came from overrides.
	Repositories []string
}

// Paths returns the core directories followed by the repositories.
func (r *Result) Paths() []string {
	out := make([]string, 0, len(r.OdooDirs)+len(r.Repositories))
	out = append(out, r.OdooDirs...)
	out = append(out, r.Repositories...)
	return out
}

// String renders the comma-separated addons_path.
func (r *Result) String() string {
	return strings.Join(r.Paths(), ",")
}

// Resolve computes the addons_path for the codebase rooted at root, which
// must be an absolute path to an existing directory (the CLI validates
// this). Layout detection runs only when no override at all was supplied;
// it returns layout.ErrNoLayout when the codebase matches nothing.
func Resolve(root string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var match *layout.Match
	if !opts.explicit() {
		m, err := layout.NewChain(logger).Detect(root)
		if err != nil {
			return nil, err
		}
		match = m
		logger.Info("codebase layout detected", "layout", match.Name)
	}

	res := &Result{}
	if match != nil {
		res.Layout = match.Name
	}

	// Core addon directories. The explicit override wins outright; the
	// detected core is only consulted when no override exists.
	coreRoot := opts.OdooDir
	if coreRoot == "" && match != nil {
		coreRoot = match.CoreRoot
	}
	if coreRoot != "" {
		dirs, err := coreAddonDirs(coreRoot)
		if err != nil {
			return nil, err
		}
		res.OdooDirs = dirs
	}

	// Candidate addon roots to expand into repositories.
	var candidates []string
	candidates = append(candidates, opts.AddonsDirs...)
	candidates = append(candidates, opts.AddonDirs...)
	if match != nil {
		candidates = append(candidates, match.AddonRoots...)
	}

	repos, err := expand(candidates, logger)
	if err != nil {
		return nil, err
	}

	// Detected input has no inherent order, so canonicalize it for
	// deterministic, diff-friendly output. Manual input order reflects
	// deliberate precedence and survives verbatim.
	if match != nil {
		sort.Strings(repos)
	}
	res.Repositories = repos

	return res, nil
}

// coreAddonDirs derives the conventional core addon directories from an
// Odoo checkout root, keeping only those that exist, in fixed order and
// never sorted.
func coreAddonDirs(coreRoot string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, dir := range []string{
		filepath.Join(coreRoot, "addons"),
		filepath.Join(coreRoot, "odoo", "addons"),
	} {
		if !paths.IsDir(dir) {
			continue
		}
		resolved, err := paths.Resolve(dir)
		if err != nil {
			return nil, errors.Wrap(err, "resolving core addon directory")
		}
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
	}
	return out, nil
}

// expand walks every existing candidate root for manifest files and
// collects the distinct repository roots, first occurrence wins. Missing
// candidates are skipped silently; candidates with zero manifests
// contribute nothing.
func expand(candidates []string, logger *slog.Logger) ([]string, error) {
	var repos []string
	seen := make(map[string]struct{})

	for _, candidate := range candidates {
		if !paths.IsDir(candidate) {
			logger.Debug("skipping missing addon root", "path", candidate)
			continue
		}
		for _, manifest := range layout.FindManifests(candidate, logger) {
			repo, err := paths.Resolve(layout.RepoRoot(manifest))
			if err != nil {
				return nil, errors.Wrap(err, "resolving repository root")
			}
			if _, ok := seen[repo]; ok {
				continue
			}
			seen[repo] = struct{}{}
			repos = append(repos, repo)
		}
	}

	return repos, nil
}
