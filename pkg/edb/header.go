package edb

import "encoding/binary"

// Header describes a table's geometry and occupancy as persisted at its base address.
type Header struct {
	Flag       uint32
	Count      uint32
	RecordSize uint32
	TableSize  uint32
}

func (h *Header) encode(b []byte) {
	binary.LittleEndian.PutUint32(b[flagOffset:], h.Flag)
	binary.LittleEndian.PutUint32(b[countOffset:], h.Count)
	binary.LittleEndian.PutUint32(b[recordSizeOffset:], h.RecordSize)
	binary.LittleEndian.PutUint32(b[tableSizeOffset:], h.TableSize)
}

func (h *Header) decode(b []byte) {
	h.Flag = binary.LittleEndian.Uint32(b[flagOffset:])
	h.Count = binary.LittleEndian.Uint32(b[countOffset:])
	h.RecordSize = binary.LittleEndian.Uint32(b[recordSizeOffset:])
	h.TableSize = binary.LittleEndian.Uint32(b[tableSizeOffset:])
}

// Limit returns the number of record slots the geometry can hold.
func (h *Header) Limit() uint32 {
	if h.RecordSize == 0 || h.TableSize < HeaderSize {
		return 0
	}
	return (h.TableSize - HeaderSize) / h.RecordSize
}
