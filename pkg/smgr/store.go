package smgr

import (
	"os"

	"github.com/downfa11-org/aostore/pkg/segment"
)

// SegmentStore is the filesystem capability the unlink scanner runs against.
// It is injected so the scanner can be driven against a fake in tests.
type SegmentStore interface {
	// Exists reports whether the segment file is present. A missing file is
	// a normal false, never an error.
	Exists(base string, n segment.FileNumber) bool

	// Remove deletes the segment file. Failures are reported to the caller;
	// the scanner records them without stopping.
	Remove(base string, n segment.FileNumber) error
}

type osStore struct{}

// NewOSStore returns a SegmentStore backed by the real filesystem.
func NewOSStore() SegmentStore {
	return osStore{}
}

func (osStore) Exists(base string, n segment.FileNumber) bool {
	info, err := os.Stat(segment.FilePath(base, n))
	return err == nil && info.Mode().IsRegular()
}

func (osStore) Remove(base string, n segment.FileNumber) error {
	return os.Remove(segment.FilePath(base, n))
}
