package smgr

import (
	"github.com/downfa11-org/aostore/pkg/segment"
)

// UnlinkFailure records one segment file the scanner could not remove.
type UnlinkFailure struct {
	FileNumber segment.FileNumber
	Err        error
}

// UnlinkResult aggregates one full scan over a relation's file grid.
type UnlinkResult struct {
	Removed  int
	Probes   int
	Failures []UnlinkFailure
}

// OK reports whether every attempted removal succeeded.
func (r UnlinkResult) OK() bool {
	return len(r.Failures) == 0
}

// UnlinkColumnStorage removes every segment file of an append-only
// column-oriented relation under base.
//
// Directory listing is deliberately not used; the scanner relies on point
// existence probes plus the writer-side guarantee that slots and columns are
// allocated contiguously in increasing order. The first missing primary file
// therefore proves no higher slot exists, and the first missing column file
// proves no higher column exists for that slot. For k live slots with c_i
// columns each, the scan costs exactly k+1 slot probes and sum(c_i)+k column
// probes.
//
// A removal failure is recorded and the scan keeps going, so one stuck file
// cannot mask cleanup of the rest. Rerunning after a crash is safe: files
// already gone probe as absent and are skipped.
func UnlinkColumnStorage(store SegmentStore, base string, lim segment.Limits) UnlinkResult {
	var res UnlinkResult

	for slot := 1; slot < lim.MaxConcurrency; slot++ {
		primary := lim.Encode(slot, 0)
		res.Probes++
		if !store.Exists(base, primary) {
			// Slots are allocated without gaps, so nothing past this one.
			break
		}
		res.removeOne(store, base, primary)

		// MaxColumns is a hard stop even if probes keep succeeding, so a
		// corrupted grid cannot make the scan unbounded.
		for column := 1; column <= lim.MaxColumns; column++ {
			n := lim.Encode(slot, column)
			res.Probes++
			if !store.Exists(base, n) {
				break
			}
			res.removeOne(store, base, n)
		}
	}

	return res
}

func (r *UnlinkResult) removeOne(store SegmentStore, base string, n segment.FileNumber) {
	if err := store.Remove(base, n); err != nil {
		r.Failures = append(r.Failures, UnlinkFailure{FileNumber: n, Err: err})
		return
	}
	r.Removed++
}
