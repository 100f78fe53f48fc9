package layout

import (
	"path/filepath"

	"github.com/odoo-tools/addons-path/internal/paths"
)

// OdooSh recognizes the odoo.sh hosting convention:
//
//	┌─ root/
//	│  ├── enterprise/        # Odoo Enterprise addons
//	│  ├── odoo/              # Odoo core
//	│  ├── themes/
//	│  └── user/              # user submodules, e.g. OCA checkouts
//
// All four directories must be present simultaneously.
type OdooSh struct{}

// NewOdooSh creates the odoo.sh detector.
func NewOdooSh() *OdooSh {
	return &OdooSh{}
}

// Name implements Detector.
func (o *OdooSh) Name() string { return NameOdooSh }

// Description implements Detector.
func (o *OdooSh) Description() string {
	return "enterprise/, odoo/, themes/ and user/ all present at the root"
}

// Detect implements Detector.
func (o *OdooSh) Detect(root string) (*Match, error) {
	for _, name := range []string{"enterprise", "odoo", "themes", "user"} {
		if !paths.IsDir(filepath.Join(root, name)) {
			return nil, nil
		}
	}

	roots := []string{
		filepath.Join(root, "enterprise"),
		filepath.Join(root, "themes"),
	}
	// Each top-level entry under user/ is a candidate repository; deeper
	// expansion into actual repositories happens in the aggregator.
	roots = append(roots, subdirs(filepath.Join(root, "user"))...)
	roots = append(roots, filepath.Join(root, "project"))

	return &Match{
		Name:       NameOdooSh,
		AddonRoots: roots,
		CoreRoot:   filepath.Join(root, "odoo"),
	}, nil
}
