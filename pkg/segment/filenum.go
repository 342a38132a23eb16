package segment

// Append-only column-oriented relations keep one physical file per
// (concurrency slot, column) pair. Both coordinates are folded into a single
// linear file number so the on-disk name carries one numeric suffix:
//
//	file number = column * multiplier + slot
//
// The multiplier equals the concurrency slot capacity, so every slot value
// stays below it and the encoding is a bijection over the supported ranges.
//
// Slot 0 is reserved; writer sessions allocate slots starting at 1, and both
// slots and columns are always allocated contiguously in increasing order.
// The unlink scanner in pkg/smgr depends on that contiguity to bound its
// probing.

const (
	// DefaultMaxConcurrency bounds concurrent append sessions per relation.
	// Usable slots are 1..DefaultMaxConcurrency-1.
	DefaultMaxConcurrency = 128

	// DefaultMaxColumns is the highest secondary column index per slot.
	// Column 0 is the slot's primary file, so a full slot carries
	// DefaultMaxColumns+1 files.
	DefaultMaxColumns = 1599
)

// FileNumber is the linear segment file number of one physical file.
type FileNumber int

// Limits fixes the dimensions of the (slot x column) file grid. They come
// from the storage engine's on-disk format configuration, never from runtime
// discovery.
type Limits struct {
	MaxConcurrency int
	MaxColumns     int
}

func DefaultLimits() Limits {
	return Limits{
		MaxConcurrency: DefaultMaxConcurrency,
		MaxColumns:     DefaultMaxColumns,
	}
}

// Multiplier is the column stride of the linear encoding. It must exceed
// every valid slot value, which MaxConcurrency does since slots stop at
// MaxConcurrency-1.
func (l Limits) Multiplier() int {
	return l.MaxConcurrency
}

// Encode folds a (slot, column) coordinate into its linear file number.
// Inputs outside the supported ranges still produce a well-defined number,
// just not one that names any real file; range checks are the caller's job.
func (l Limits) Encode(slot, column int) FileNumber {
	return FileNumber(column*l.Multiplier() + slot)
}

// Decode recovers the (slot, column) coordinate a file number encodes.
func (l Limits) Decode(n FileNumber) (slot, column int) {
	m := l.Multiplier()
	return int(n) % m, int(n) / m
}
