package layout

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/odoo-tools/addons-path/internal/paths"
	"github.com/odoo-tools/addons-path/pkg/fileutil"
)

// C2C recognizes Camptocamp projects by the maintainer label in the
// project Dockerfile. Two generations of the convention exist:
//
// Legacy layout (odoo/src holds the core checkout):
//
//	┌─ root/
//	│  └── odoo/
//	│      ├── Dockerfile
//	│      ├── src/           # Odoo core source
//	│      ├── external-src/  # one subdirectory per vendored repository
//	│      └── local-src/     # project-specific modules
//
// Current layout:
//
//	┌─ root/
//	│  ├── Dockerfile
//	│  └── odoo/
//	│      ├── addons/        # Odoo core addons
//	│      ├── dev-src/
//	│      ├── paid-modules/
//	│      └── external-src/
type C2C struct {
	logger *slog.Logger
}

// NewC2C creates the Camptocamp detector.
func NewC2C(logger *slog.Logger) *C2C {
	if logger == nil {
		logger = slog.Default()
	}
	return &C2C{logger: logger}
}

// Name implements Detector.
func (c *C2C) Name() string { return NameC2C }

// Description implements Detector.
func (c *C2C) Description() string {
	return "Dockerfile with a Camptocamp maintainer label; legacy and current layouts"
}

// Detect implements Detector.
func (c *C2C) Detect(root string) (*Match, error) {
	dockerfile := c.findDockerfile(root)
	if dockerfile == "" || !c.isC2CDockerfile(dockerfile) {
		return nil, nil
	}

	roots := subdirs(filepath.Join(root, "odoo", "external-src"))

	if paths.IsDir(filepath.Join(root, "odoo", "src")) {
		return &Match{
			Name:       NameC2CLegacy,
			AddonRoots: append(roots, filepath.Join(root, "odoo", "local-src")),
			CoreRoot:   filepath.Join(root, "odoo", "src"),
		}, nil
	}

	for _, name := range []string{"dev-src", "paid-modules"} {
		dir := filepath.Join(root, "odoo", name)
		if paths.IsDir(dir) {
			roots = append(roots, dir)
		}
	}

	match := &Match{
		Name:       NameC2C,
		AddonRoots: roots,
	}
	// The core derivation keeps only directories that exist, so pointing
	// CoreRoot at odoo/ yields exactly odoo/addons in the current layout.
	if paths.IsDir(filepath.Join(root, "odoo", "addons")) {
		match.CoreRoot = filepath.Join(root, "odoo")
	}
	return match, nil
}

// findDockerfile returns the first existing Dockerfile among the two
// locations the convention has used over time.
func (c *C2C) findDockerfile(root string) string {
	for _, p := range []string{
		filepath.Join(root, "odoo", "Dockerfile"),
		filepath.Join(root, "Dockerfile"),
	} {
		if paths.IsFile(p) {
			return p
		}
	}
	return ""
}

// isC2CDockerfile reports whether the Dockerfile carries the Camptocamp
// maintainer label, with either quoting style. Read failures downgrade to
// no-match.
func (c *C2C) isC2CDockerfile(dockerfile string) bool {
	data, err := fileutil.ReadFileWithLimit(dockerfile)
	if err != nil {
		c.logger.Debug("unreadable Dockerfile treated as no-match",
			"path", dockerfile, "error", err)
		return false
	}
	content := string(data)
	return strings.Contains(content, `LABEL maintainer='Camptocamp'`) ||
		strings.Contains(content, `LABEL maintainer="Camptocamp"`)
}
