package xlog

import (
	"encoding/binary"
	"fmt"

	"github.com/downfa11-org/aostore/pkg/segment"
)

// Trace-file framing: fixed 33-byte big-endian records.
// [kind:1][spcNode:4][dbNode:4][relNode:4][fileNumber:4][offset:8][len:8]
const recordSize = 1 + 4 + 4 + 4 + 4 + 8 + 8

// EncodeRecord serializes a record into its trace-file framing.
func EncodeRecord(r Record) []byte {
	buf := make([]byte, recordSize)

	buf[0] = byte(r.Kind)
	offset := 1

	binary.BigEndian.PutUint32(buf[offset:], r.Target.Node.SpcNode)
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:], r.Target.Node.DbNode)
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:], r.Target.Node.RelNode)
	offset += 4
	binary.BigEndian.PutUint32(buf[offset:], uint32(r.Target.FileNumber))
	offset += 4
	binary.BigEndian.PutUint64(buf[offset:], uint64(r.Target.Offset))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], r.Len)

	return buf
}

// DecodeRecord deserializes one framed record.
func DecodeRecord(data []byte) (Record, error) {
	if len(data) < recordSize {
		return Record{}, fmt.Errorf("record too short: %d bytes", len(data))
	}

	var r Record
	r.Kind = RecordKind(data[0])
	offset := 1

	r.Target.Node.SpcNode = binary.BigEndian.Uint32(data[offset:])
	offset += 4
	r.Target.Node.DbNode = binary.BigEndian.Uint32(data[offset:])
	offset += 4
	r.Target.Node.RelNode = binary.BigEndian.Uint32(data[offset:])
	offset += 4
	r.Target.FileNumber = segment.FileNumber(binary.BigEndian.Uint32(data[offset:]))
	offset += 4
	r.Target.Offset = int64(binary.BigEndian.Uint64(data[offset:]))
	offset += 8
	r.Len = binary.BigEndian.Uint64(data[offset:])

	return r, nil
}
