//go:build linux
// +build linux

package smgr

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// syncDir makes completed removals durable by fsyncing the directory that
// held the relation's files.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Fsync(int(f.Fd())); err != nil {
		return fmt.Errorf("fsync %s: %w", dir, err)
	}
	return nil
}
