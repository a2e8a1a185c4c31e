package memory

import (
	"github.com/huynhanx03/go-edb/pkg/edb"
)

const (
	// defaultCapacity is the default initial capacity for a new Store.
	defaultCapacity = 64

	// maxGrowth is the maximum amount of bytes to grow by in a single step (1GB).
	maxGrowth = 1 << 30
)

var (
	_ edb.ByteStore  = (*Store)(nil)
	_ edb.BlockStore = (*Store)(nil)
)

// Store is a byte store held in memory. Writes past the end grow it; reads past the
// end return zero. It is NOT thread-safe.
type Store struct {
	data []byte
}

// New creates a Store with room for capacity bytes.
func New(capacity int) *Store {
	if capacity < defaultCapacity {
		capacity = defaultCapacity
	}
	return &Store{data: make([]byte, 0, capacity)}
}

// NewSlice wraps an existing byte slice. The store shares its backing array until it grows.
func NewSlice(b []byte) *Store {
	return &Store{data: b}
}

// Len returns the highest written address plus one.
func (s *Store) Len() int {
	return len(s.data)
}

// Bytes returns the written bytes.
func (s *Store) Bytes() []byte {
	return s.data
}

func (s *Store) StoreByte(addr uint64, v byte) {
	s.grow(addr + 1)
	s.data[addr] = v
}

func (s *Store) LoadByte(addr uint64) byte {
	if addr >= uint64(len(s.data)) {
		return 0
	}
	return s.data[addr]
}

func (s *Store) StoreBlock(addr uint64, p []byte) {
	s.grow(addr + uint64(len(p)))
	copy(s.data[addr:], p)
}

func (s *Store) LoadBlock(addr uint64, p []byte) {
	n := 0
	if addr < uint64(len(s.data)) {
		n = copy(p, s.data[addr:])
	}
	clear(p[n:])
}

// Err always returns nil.
func (s *Store) Err() error { return nil }

// Close releases the memory held by the store.
func (s *Store) Close() error {
	s.data = nil
	return nil
}

// grow ensures the store spans at least n bytes.
func (s *Store) grow(n uint64) {
	if n <= uint64(len(s.data)) {
		return
	}
	if n <= uint64(cap(s.data)) {
		s.data = s.data[:n]
		return
	}

	growBy := uint64(cap(s.data))
	if growBy > maxGrowth {
		growBy = maxGrowth
	}
	size := uint64(cap(s.data)) + growBy
	if size < n {
		size = n
	}
	data := make([]byte, n, size)
	copy(data, s.data)
	s.data = data
}
