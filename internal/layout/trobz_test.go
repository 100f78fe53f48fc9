package layout

import (
	"path/filepath"
	"testing"
)

func TestTrobz_Detect(t *testing.T) {
	t.Run("no marker", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "addons", "project")

		m, err := NewTrobz().Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m != nil {
			t.Errorf("Detect() = %+v, want nil", m)
		}
	})

	t.Run("marker with addons repos", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, ".trobz", "addons/repo1", "addons/repo2", "project", "odoo")

		m, err := NewTrobz().Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Fatal("Detect() = nil, want match")
		}
		if m.Name != NameTrobz {
			t.Errorf("Name = %q, want %q", m.Name, NameTrobz)
		}

		for _, want := range []string{
			filepath.Join(root, "addons", "repo1"),
			filepath.Join(root, "addons", "repo2"),
			filepath.Join(root, "project"),
		} {
			if !containsPath(m.AddonRoots, want) {
				t.Errorf("AddonRoots missing %q: %v", want, m.AddonRoots)
			}
		}
		if m.CoreRoot != filepath.Join(root, "odoo") {
			t.Errorf("CoreRoot = %q, want %q", m.CoreRoot, filepath.Join(root, "odoo"))
		}
	})

	t.Run("marker without addons directory", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, ".trobz")

		m, err := NewTrobz().Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Fatal("Detect() = nil, want match")
		}
		// Missing addons/ contributes nothing; project/ stays a candidate
		// even though it does not exist yet.
		if !containsPath(m.AddonRoots, filepath.Join(root, "project")) {
			t.Errorf("AddonRoots missing project dir: %v", m.AddonRoots)
		}
	})

	t.Run("trobz file not directory", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ".trobz", "")

		m, err := NewTrobz().Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m != nil {
			t.Errorf("a .trobz file should not match, got %+v", m)
		}
	})
}
