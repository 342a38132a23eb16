package smgr_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/downfa11-org/aostore/pkg/segment"
	"github.com/downfa11-org/aostore/pkg/smgr"
)

func TestOSStoreExists(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "16384")
	store := smgr.NewOSStore()

	if store.Exists(base, 1) {
		t.Fatalf("Exists should be false for a missing file")
	}

	if err := os.WriteFile(segment.FilePath(base, 1), []byte("seg"), 0644); err != nil {
		t.Fatalf("write segment: %v", err)
	}
	if !store.Exists(base, 1) {
		t.Fatalf("Exists should be true after creating the file")
	}

	// Directories are not segment files.
	if err := os.Mkdir(segment.FilePath(base, 2), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if store.Exists(base, 2) {
		t.Fatalf("Exists should ignore non-regular files")
	}
}

func TestOSStoreRemove(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "16384")
	store := smgr.NewOSStore()

	if err := os.WriteFile(segment.FilePath(base, 5), []byte("seg"), 0644); err != nil {
		t.Fatalf("write segment: %v", err)
	}

	if err := store.Remove(base, 5); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Exists(base, 5) {
		t.Fatalf("file should be gone after Remove")
	}

	if err := store.Remove(base, 5); err == nil {
		t.Fatalf("Remove of a missing file should report an error")
	}
}
