package edb

const (
	// Flag marks a region initialized by this engine.
	Flag = uint32(0xAB)

	// Layout: [Flag | Count | RecordSize | TableSize | Records...]
	// Size: 4B each, little-endian, followed by Limit() record slots.
	flagOffset       = 0
	countOffset      = 4
	recordSizeOffset = 8
	tableSizeOffset  = 12

	// HeaderSize is the number of bytes the header occupies at the base address.
	HeaderSize = 16
)
