package layout

import (
	"path/filepath"
	"testing"

	"github.com/odoo-tools/addons-path/internal/logging"
)

func TestGeneric_Detect(t *testing.T) {
	t.Run("no manifests is no match", func(t *testing.T) {
		root := t.TempDir()
		mkdirs(t, root, "src", "docs")

		m, err := NewGeneric(logging.ForTest(t)).Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m != nil {
			t.Errorf("Detect() = %+v, want nil", m)
		}
	})

	t.Run("manifests at any depth", func(t *testing.T) {
		root := t.TempDir()
		addModule(t, root, "repo1", "module_a")
		addModule(t, root, "deeply/nested/repo2", "module_b")

		m, err := NewGeneric(logging.ForTest(t)).Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Fatal("Detect() = nil, want match")
		}
		if m.Name != NameGeneric {
			t.Errorf("Name = %q, want %q", m.Name, NameGeneric)
		}

		for _, want := range []string{
			filepath.Join(root, "repo1"),
			filepath.Join(root, "deeply", "nested", "repo2"),
		} {
			if !containsPath(m.AddonRoots, want) {
				t.Errorf("AddonRoots missing %q: %v", want, m.AddonRoots)
			}
		}
	})

	t.Run("one root per repository", func(t *testing.T) {
		root := t.TempDir()
		addModule(t, root, "repo1", "module_a")
		addModule(t, root, "repo1", "module_b")

		m, err := NewGeneric(logging.ForTest(t)).Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Fatal("Detect() = nil, want match")
		}
		if len(m.AddonRoots) != 1 {
			t.Errorf("AddonRoots = %v, want a single root", m.AddonRoots)
		}
	})

	t.Run("setup manifests ignored", func(t *testing.T) {
		root := t.TempDir()
		// OCA packaging convention: setup/<module>/odoo/addons/<module> is
		// a symlink farm whose manifests duplicate the real ones.
		writeFile(t, root, filepath.Join("repo1", "setup", "module_a", "odoo", "addons", "module_a", ManifestFile), "{}\n")

		m, err := NewGeneric(logging.ForTest(t)).Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m != nil {
			t.Errorf("setup-only manifests should not match, got %+v", m)
		}
	})

	t.Run("nested repository suppressed", func(t *testing.T) {
		root := t.TempDir()
		addModule(t, root, "repo1", "module_a")
		// A vendored copy inside module_a must not become its own root.
		addModule(t, root, filepath.Join("repo1", "module_a", "vendor", "repo2"), "module_c")

		m, err := NewGeneric(logging.ForTest(t)).Detect(root)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Fatal("Detect() = nil, want match")
		}
		if len(m.AddonRoots) != 1 || m.AddonRoots[0] != filepath.Join(root, "repo1") {
			t.Errorf("AddonRoots = %v, want [%s]", m.AddonRoots, filepath.Join(root, "repo1"))
		}
	})
}

func TestFindManifests_Order(t *testing.T) {
	root := t.TempDir()
	addModule(t, root, "zrepo", "module_z")
	addModule(t, root, "arepo", "module_a")

	got := FindManifests(root, logging.ForTest(t))
	if len(got) != 2 {
		t.Fatalf("got %d manifests, want 2: %v", len(got), got)
	}
	if got[0] != filepath.Join(root, "arepo", "module_a", ManifestFile) {
		t.Errorf("manifests not in lexical order: %v", got)
	}
}

func TestRepoRoot(t *testing.T) {
	manifest := filepath.Join("/", "x", "repo", "module", ManifestFile)
	if got := RepoRoot(manifest); got != filepath.Join("/", "x", "repo") {
		t.Errorf("RepoRoot(%q) = %q", manifest, got)
	}
}
