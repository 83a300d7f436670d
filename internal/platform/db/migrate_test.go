package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMigrations_SortsAndParses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002_add_claims.sql", "CREATE TABLE claim ();")
	writeFile(t, dir, "001_init.sql", "CREATE TABLE patient ();")
	writeFile(t, dir, "010_indexes.sql", "CREATE INDEX x ON patient(id);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	wantVersions := []int{1, 2, 10}
	wantNames := []string{"init", "add_claims", "indexes"}
	for i, mig := range migrations {
		if mig.Version != wantVersions[i] {
			t.Errorf("migration %d: version = %d, want %d", i, mig.Version, wantVersions[i])
		}
		if mig.Name != wantNames[i] {
			t.Errorf("migration %d: name = %q, want %q", i, mig.Name, wantNames[i])
		}
		if mig.SQL == "" {
			t.Errorf("migration %d: empty SQL", i)
		}
	}
}

func TestLoadMigrations_SkipsNonMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "001_init.sql", "CREATE TABLE patient ();")
	writeFile(t, dir, "README.md", "notes")
	writeFile(t, dir, "helper.sql", "-- no version prefix")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 1 || migrations[0].Version != 1 {
		t.Fatalf("expected only 001_init.sql, got %+v", migrations)
	}
}

func TestLoadMigrations_MissingDir(t *testing.T) {
	m := NewMigrator(nil, "/nonexistent/migrations")
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
