package edb

// ByteStore is the byte-addressable medium a Table lives in.
// Both methods must be total over the addresses the table uses.
type ByteStore interface {
	StoreByte(addr uint64, v byte)
	LoadByte(addr uint64) byte
}

// BlockStore is implemented by stores that can move a run of bytes in one call.
// When the store passed to New implements it, the table uses it instead of
// looping over StoreByte/LoadByte.
type BlockStore interface {
	StoreBlock(addr uint64, p []byte)
	LoadBlock(addr uint64, p []byte)
}

// ByteStoreFuncs adapts a pair of callbacks to ByteStore.
type ByteStoreFuncs struct {
	Write func(addr uint64, v byte)
	Read  func(addr uint64) byte
}

func (f ByteStoreFuncs) StoreByte(addr uint64, v byte) { f.Write(addr, v) }
func (f ByteStoreFuncs) LoadByte(addr uint64) byte     { return f.Read(addr) }

// writeBytes copies p to the store starting at addr.
func writeBytes(s ByteStore, addr uint64, p []byte) {
	if bs, ok := s.(BlockStore); ok {
		bs.StoreBlock(addr, p)
		return
	}
	for i := range p {
		s.StoreByte(addr+uint64(i), p[i])
	}
}

// readBytes fills p from the store starting at addr.
func readBytes(s ByteStore, addr uint64, p []byte) {
	if bs, ok := s.(BlockStore); ok {
		bs.LoadBlock(addr, p)
		return
	}
	for i := range p {
		p[i] = s.LoadByte(addr + uint64(i))
	}
}
