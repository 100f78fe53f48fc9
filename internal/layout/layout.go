package layout

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Layout names as they appear in verbose output. These mirror the labels
// the wider Odoo tooling ecosystem uses for each project convention.
const (
	NameTrobz     = "Trobz"
	NameC2C       = "Camptocamp"
	NameC2CLegacy = "Camptocamp (Legacy)"
	NameOdooSh    = "odoo.sh"
	NameDoodba    = "Doodba"
	NameGeneric   = "fallback"
)

// ErrNoLayout indicates that no detector matched the codebase, including the
// terminal fallback (which declines only when the tree holds no manifest at
// all).
var ErrNoLayout = errors.New("no codebase layout detected")

// Match is the result of a successful layout detection. All paths are
// absolute, rooted under the inspected codebase, and may point at
// directories that do not exist; the aggregator skips missing ones.
type Match struct {
	// Name is the label of the matched layout, one of the Name constants.
	Name string

	// AddonRoots are the candidate directories to expand into addon
	// repositories by searching them for manifest files.
	AddonRoots []string

	// CoreRoot is the Odoo core checkout, when the layout designates one.
	// The aggregator derives the core addon directories
	// (<CoreRoot>/addons and <CoreRoot>/odoo/addons) from it.
	CoreRoot string
}

// Detector recognizes a single layout convention.
//
// Detect returns a nil Match when the codebase does not follow the
// detector's convention. Errors are reserved for conditions the caller
// cannot treat as a plain no-match; detectors swallow their own I/O
// hiccups (unreadable marker files, permission-denied subtrees) per the
// recovery policy and return (nil, nil) instead.
type Detector interface {
	// Name is the layout label shown in listings.
	Name() string

	// Description is a one-line summary of the convention's signature.
	Description() string

	// Detect inspects the codebase root, given as an absolute path.
	Detect(root string) (*Match, error)
}

// Chain evaluates detectors in a fixed order with first-match-wins
// semantics. Reordering or inserting a detector is a one-line edit here;
// detectors know nothing about their successors.
type Chain struct {
	detectors []Detector
	logger    *slog.Logger
}

// NewChain builds the standard detection chain:
// Trobz, Camptocamp, odoo.sh, Doodba, then the generic fallback.
func NewChain(logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		detectors: []Detector{
			NewTrobz(),
			NewC2C(logger),
			NewOdooSh(),
			NewDoodba(logger),
			NewGeneric(logger),
		},
		logger: logger,
	}
}

// Detectors returns the chain's detectors in evaluation order.
func (c *Chain) Detectors() []Detector {
	return c.detectors
}

// Detect runs the chain against the codebase root and returns the first
// match. Returns ErrNoLayout when every detector declines, which can only
// happen when the fallback finds zero manifests anywhere under root.
func (c *Chain) Detect(root string) (*Match, error) {
	for _, d := range c.detectors {
		m, err := d.Detect(root)
		if err != nil {
			return nil, errors.Wrapf(err, "detecting %s layout", d.Name())
		}
		if m != nil {
			c.logger.Debug("layout matched", "layout", m.Name, "root", root)
			return m, nil
		}
		c.logger.Debug("layout declined", "layout", d.Name(), "root", root)
	}
	return nil, errors.Wrapf(ErrNoLayout, "under %s", root)
}
