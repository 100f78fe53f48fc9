package layout

import (
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odoo-tools/addons-path/internal/paths"
	"github.com/odoo-tools/addons-path/pkg/fileutil"
)

// Doodba recognizes projects generated from the Doodba copier template,
// identified by the _src_path recorded in .copier-answers.yml:
//
//	┌─ root/
//	│  ├── .copier-answers.yml
//	│  └── odoo/
//	│      └── custom/
//	│          └── src/
//	│              ├── odoo/         # Odoo core checkout (reserved)
//	│              ├── private/      # project modules (reserved)
//	│              └── <repo>/       # one subdirectory per aggregated repo
type Doodba struct {
	logger *slog.Logger
}

// copierAnswers is the subset of the answers file we care about.
type copierAnswers struct {
	SrcPath string `yaml:"_src_path"`
}

// NewDoodba creates the Doodba detector.
func NewDoodba(logger *slog.Logger) *Doodba {
	if logger == nil {
		logger = slog.Default()
	}
	return &Doodba{logger: logger}
}

// Name implements Detector.
func (d *Doodba) Name() string { return NameDoodba }

// Description implements Detector.
func (d *Doodba) Description() string {
	return ".copier-answers.yml generated from a doodba template"
}

// Detect implements Detector.
func (d *Doodba) Detect(root string) (*Match, error) {
	answersFile := filepath.Join(root, ".copier-answers.yml")
	if !paths.IsFile(answersFile) {
		return nil, nil
	}

	data, err := fileutil.ReadFileWithLimit(answersFile)
	if err != nil {
		d.logger.Debug("unreadable copier answers treated as no-match",
			"path", answersFile, "error", err)
		return nil, nil
	}

	var answers copierAnswers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		d.logger.Debug("malformed copier answers treated as no-match",
			"path", answersFile, "error", err)
		return nil, nil
	}
	if !strings.Contains(answers.SrcPath, "doodba") {
		return nil, nil
	}

	src := filepath.Join(root, "odoo", "custom", "src")
	if !paths.IsDir(src) {
		// Answers point at doodba but the tree is incomplete; let the
		// chain keep looking.
		return nil, nil
	}

	var roots []string
	for _, sub := range subdirs(src) {
		// odoo/ is the core checkout and private/ holds project modules;
		// neither is an aggregated repository.
		switch filepath.Base(sub) {
		case "odoo", "private":
			continue
		}
		roots = append(roots, sub)
	}
	roots = append(roots, filepath.Join(src, "private"))

	return &Match{
		Name:       NameDoodba,
		AddonRoots: roots,
		CoreRoot:   filepath.Join(src, "odoo"),
	}, nil
}
