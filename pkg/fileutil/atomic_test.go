package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{name: "successful write", data: []byte("hello world\n"), perm: 0644},
		{name: "empty data", data: []byte{}, perm: 0644},
		{name: "restricted perm", data: []byte("secret"), perm: 0600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != tt.perm {
				t.Errorf("perm = %v, want %v", info.Mode().Perm(), tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestAtomicWriteFile_NoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := AtomicWriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".addons-path-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addons-path.toml")

	type cfg struct {
		AddonsDirs []string `toml:"addons_dirs"`
		OdooDir    string   `toml:"odoo_dir"`
	}

	if err := AtomicWriteTOML(path, cfg{
		AddonsDirs: []string{"./external-src"},
		OdooDir:    "./odoo",
	}); err != nil {
		t.Fatalf("AtomicWriteTOML() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "addons_dirs") {
		t.Errorf("output missing addons_dirs key: %q", got)
	}
	if !strings.HasSuffix(string(got), "\n") {
		t.Error("output should end with a newline")
	}
}
