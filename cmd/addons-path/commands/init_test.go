package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/odoo-tools/addons-path/internal/config"
)

// chdir changes the working directory for the duration of the test.
// It stands in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// resetInitFlags resets the init command flags to their default values.
func resetInitFlags(t *testing.T) {
	t.Helper()
	origUser := initUser
	origForce := initForce
	t.Cleanup(func() {
		initUser = origUser
		initForce = origForce
	})
	initUser = false
	initForce = false
}

func TestRunInit_WritesProjectFile(t *testing.T) {
	resetResolveState(t)
	resetInitFlags(t)
	chdir(t, t.TempDir())

	addonsDirsFlag = "./external-src"
	odooDirFlag = "./odoo/src"

	var buf bytes.Buffer
	if err := runInit(&buf); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Created "+config.FileName) {
		t.Errorf("output = %q, want creation notice", buf.String())
	}

	data, err := os.ReadFile(config.FileName)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}

	var got config.Config
	if err := toml.Unmarshal(data, &got); err != nil {
		t.Fatalf("written config is not valid TOML: %v\n%s", err, data)
	}
	if got.OdooDir != "./odoo/src" {
		t.Errorf("odoo_dir = %q, want %q", got.OdooDir, "./odoo/src")
	}
	if len(got.AddonsDirs) != 1 || got.AddonsDirs[0] != "./external-src" {
		t.Errorf("addons_dirs = %v, want the flag value verbatim", got.AddonsDirs)
	}
}

func TestRunInit_ExistingFileNeedsForce(t *testing.T) {
	resetResolveState(t)
	resetInitFlags(t)
	chdir(t, t.TempDir())

	if err := os.WriteFile(config.FileName, []byte("odoo_dir = \"/keep\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runInit(&buf); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Use --force to overwrite") {
		t.Errorf("output = %q, want the force hint", buf.String())
	}

	data, err := os.ReadFile(config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "/keep") {
		t.Error("existing config was overwritten without --force")
	}
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	resetResolveState(t)
	resetInitFlags(t)
	chdir(t, t.TempDir())

	if err := os.WriteFile(config.FileName, []byte("odoo_dir = \"/old\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	initForce = true
	odooDirFlag = "/new"

	var buf bytes.Buffer
	if err := runInit(&buf); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	data, err := os.ReadFile(config.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "/new") {
		t.Errorf("config = %s, want the new odoo_dir", data)
	}
}
