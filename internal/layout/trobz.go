package layout

import (
	"path/filepath"

	"github.com/odoo-tools/addons-path/internal/paths"
)

// Trobz recognizes the Trobz project convention, marked by a .trobz
// directory at the codebase root:
//
//	┌─ root/
//	│  ├── .trobz/
//	│  ├── addons/            # one subdirectory per addon repository
//	│  ├── project/           # project-specific modules
//	│  └── odoo/              # Odoo core checkout
type Trobz struct{}

// NewTrobz creates the Trobz detector.
func NewTrobz() *Trobz {
	return &Trobz{}
}

// Name implements Detector.
func (t *Trobz) Name() string { return NameTrobz }

// Description implements Detector.
func (t *Trobz) Description() string {
	return ".trobz marker directory; repositories under addons/, modules under project/"
}

// Detect implements Detector.
func (t *Trobz) Detect(root string) (*Match, error) {
	if !paths.IsDir(filepath.Join(root, ".trobz")) {
		return nil, nil
	}

	// Each entry under addons/ is an addon repository. A missing addons/
	// directory is tolerated; project/ still contributes.
	roots := subdirs(filepath.Join(root, "addons"))
	roots = append(roots, filepath.Join(root, "project"))

	return &Match{
		Name:       NameTrobz,
		AddonRoots: roots,
		CoreRoot:   filepath.Join(root, "odoo"),
	}, nil
}
