package layout

import (
	"log/slog"

	"github.com/odoo-tools/addons-path/internal/paths"
)

// Generic is the terminal fallback: it recognizes any tree that contains at
// least one manifest file, at any depth. Repository roots nested inside
// another discovered repository root are suppressed so vendored copies are
// not double-counted.
type Generic struct {
	logger *slog.Logger
}

// NewGeneric creates the fallback detector.
func NewGeneric(logger *slog.Logger) *Generic {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generic{logger: logger}
}

// Name implements Detector.
func (g *Generic) Name() string { return NameGeneric }

// Description implements Detector.
func (g *Generic) Description() string {
	return "any tree containing at least one " + ManifestFile
}

// Detect implements Detector.
func (g *Generic) Detect(root string) (*Match, error) {
	manifests := FindManifests(root, g.logger)
	if len(manifests) == 0 {
		return nil, nil
	}

	// Collect distinct repository roots, preserving discovery order.
	seen := make(map[string]struct{})
	var roots []string
	for _, m := range manifests {
		repo := RepoRoot(m)
		if _, ok := seen[repo]; ok {
			continue
		}
		seen[repo] = struct{}{}
		roots = append(roots, repo)
	}

	return &Match{
		Name:       NameGeneric,
		AddonRoots: pruneNested(roots),
	}, nil
}

// pruneNested drops any root that lies strictly inside another root.
// Input order is preserved for the survivors.
func pruneNested(roots []string) []string {
	var out []string
	for _, candidate := range roots {
		nested := false
		for _, other := range roots {
			if other != candidate && paths.IsWithin(candidate, other) {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, candidate)
		}
	}
	return out
}
