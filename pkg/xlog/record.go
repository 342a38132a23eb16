// Package xlog describes append-only storage WAL records. Record generation
// lives in the write path of the storage engine; this package only renders
// the human-readable trace line for a record, plus the binary framing used
// by trace files.
package xlog

import (
	"fmt"

	"github.com/downfa11-org/aostore/pkg/segment"
)

// RelFileNode identifies one relation fork on disk.
type RelFileNode struct {
	SpcNode uint32
	DbNode  uint32
	RelNode uint32
}

// Target names the exact segment file and offset a record applies to.
type Target struct {
	Node       RelFileNode
	FileNumber segment.FileNumber
	Offset     int64
}

type RecordKind uint8

const (
	RecordInsert RecordKind = iota + 1
	RecordTruncate
)

// Record is one append-only storage WAL entry.
type Record struct {
	Kind   RecordKind
	Target Target
	Len    uint64
}

// Describe renders the trace line for a record.
func Describe(r Record) string {
	t := r.Target
	switch r.Kind {
	case RecordInsert:
		return fmt.Sprintf("insert: rel %d/%d/%d seg/offset:%d/%d len:%d",
			t.Node.SpcNode, t.Node.DbNode, t.Node.RelNode, t.FileNumber, t.Offset, r.Len)
	case RecordTruncate:
		return fmt.Sprintf("truncate: rel %d/%d/%d seg/offset:%d/%d",
			t.Node.SpcNode, t.Node.DbNode, t.Node.RelNode, t.FileNumber, t.Offset)
	default:
		return "UNKNOWN"
	}
}
