package db

import (
	"path/filepath"
	"testing"
)

func TestInitCreatesSchema(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	version, err := GetUserVersion(database)
	if err != nil {
		t.Fatalf("GetUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='invocations'`,
	).Scan(&name)
	if err != nil {
		t.Fatalf("invocations table missing: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	database.Close()

	database, err = Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer database.Close()

	version, err := GetUserVersion(database)
	if err != nil {
		t.Fatalf("GetUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d after reopen, want %d", version, CurrentSchemaVersion)
	}
}

func TestInitNestedBaseDir(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "deep", "nested")
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed for nested dir: %v", err)
	}
	database.Close()
}
