package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "site.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Title != "jambonne" {
		t.Errorf("Title = %q", m.Title)
	}
	if len(m.Nav) == 0 {
		t.Error("default nav is empty")
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := "title: My Site\nauthor: Jam Bonne\ntagline: notes and reading\nnav:\n  - label: Home\n    href: /\n  - label: Blog\n    href: /blog\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Title != "My Site" || m.Author != "Jam Bonne" {
		t.Errorf("unexpected meta: %+v", m)
	}
	if len(m.Nav) != 2 || m.Nav[1].Href != "/blog" {
		t.Errorf("unexpected nav: %+v", m.Nav)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
