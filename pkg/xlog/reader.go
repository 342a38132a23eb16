package xlog

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// ReadTraceFile decodes every framed record in a trace file. A trailing
// partial record (torn write) is ignored.
func ReadTraceFile(path string) ([]Record, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap open failed: %w", err)
	}
	defer reader.Close()

	records := []Record{}
	buf := make([]byte, recordSize)

	for pos := 0; pos+recordSize <= reader.Len(); pos += recordSize {
		if _, err := reader.ReadAt(buf, int64(pos)); err != nil {
			return records, fmt.Errorf("read record at %d: %w", pos, err)
		}
		r, err := DecodeRecord(buf)
		if err != nil {
			return records, err
		}
		records = append(records, r)
	}
	return records, nil
}
