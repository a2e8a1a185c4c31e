package edb

import (
	"go.uber.org/zap"
)

// Table is a dense sequence of fixed-size records stored behind a header in a ByteStore.
// Records are numbered from 1 to Count(). It is NOT thread-safe.
type Table struct {
	store ByteStore
	log   *zap.Logger

	base uint64
	head Header
	hbuf [HeaderSize]byte

	// Both hold one record and are allocated on first use, so opening a
	// table never allocates in proportion to its record size.
	scratch []byte // shift space
	pad     []byte // zero-padded copy of short writes
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns a Table backed by store. Call Create or Open before using it.
func New(store ByteStore, opts ...Option) *Table {
	t := &Table{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Create initializes a new table at base and persists its header.
// Any existing header is overwritten; old record bytes are left in place.
func (t *Table) Create(base uint64, tableSize, recordSize uint32) error {
	t.base = base
	t.head = Header{
		Flag:       Flag,
		RecordSize: recordSize,
		TableSize:  tableSize,
	}
	t.writeHead()
	t.log.Debug("table created",
		zap.Uint64("base", base),
		zap.Uint32("table_size", tableSize),
		zap.Uint32("record_size", recordSize),
		zap.Uint32("limit", t.Limit()))
	return nil
}

// Open loads the header stored at base. On failure the table keeps the state it had.
func (t *Table) Open(base uint64) error {
	head := t.readHead(base)
	if head.Flag != Flag {
		t.log.Warn("no table at address",
			zap.Uint64("base", base),
			zap.Uint32("flag", head.Flag))
		return ErrNotATable
	}
	t.base = base
	t.head = head
	t.log.Debug("table opened",
		zap.Uint64("base", base),
		zap.Uint32("count", t.head.Count),
		zap.Uint32("record_size", t.head.RecordSize))
	return nil
}

// Count returns the number of records in the table.
func (t *Table) Count() uint32 {
	return t.head.Count
}

// Limit returns the maximum number of records the table can hold.
func (t *Table) Limit() uint32 {
	return t.head.Limit()
}

// RecordSize returns the size in bytes of every record.
func (t *Table) RecordSize() int {
	return int(t.head.RecordSize)
}

// Base returns the address of the table header.
func (t *Table) Base() uint64 {
	return t.base
}

// Header returns a copy of the in-memory header.
func (t *Table) Header() Header {
	return t.head
}

// ReadRecord copies record recno into out, which must hold at least RecordSize() bytes.
func (t *Table) ReadRecord(recno uint32, out []byte) error {
	if recno < 1 || recno > t.head.Count {
		return ErrOutOfRange
	}
	if len(out) < int(t.head.RecordSize) {
		return ErrShortBuffer
	}
	readBytes(t.store, t.addr(recno), out[:t.head.RecordSize])
	return nil
}

// UpdateRecord overwrites record recno in place.
func (t *Table) UpdateRecord(recno uint32, rec []byte) error {
	if recno < 1 || recno > t.head.Count {
		return ErrOutOfRange
	}
	t.writeRecordAt(recno, rec)
	return nil
}

// WriteRecord is an alias for UpdateRecord.
func (t *Table) WriteRecord(recno uint32, rec []byte) error {
	return t.UpdateRecord(recno, rec)
}

// AppendRecord adds rec after the last record. This is the fastest way to add a record.
func (t *Table) AppendRecord(rec []byte) error {
	if t.head.Count+1 > t.Limit() {
		return ErrTableFull
	}
	t.head.Count++
	t.writeRecordAt(t.head.Count, rec)
	t.writeHead()
	return nil
}

// InsertRecord places rec at recno, moving the records at recno and after up by one.
// When the table holds records, recno must lie in [1, Count()]; adding past the last
// record is done with AppendRecord. An empty table only accepts recno 1.
func (t *Table) InsertRecord(recno uint32, rec []byte) error {
	n := t.head.Count
	if n >= t.Limit() {
		return ErrTableFull
	}
	if n == 0 {
		if recno != 1 {
			return ErrOutOfRange
		}
		return t.AppendRecord(rec)
	}
	if recno < 1 || recno > n {
		return ErrOutOfRange
	}

	t.scratch = grow(t.scratch, int(t.head.RecordSize))
	// Highest first, so every record is copied before its slot is reused.
	for i := n; i >= recno; i-- {
		t.readRecordAt(i, t.scratch)
		t.writeRecordAt(i+1, t.scratch)
	}
	t.log.Debug("records shifted up", zap.Uint32("from", recno), zap.Uint32("moved", n-recno+1))

	t.writeRecordAt(recno, rec)
	t.head.Count++
	t.writeHead()
	return nil
}

// DeleteRecord removes record recno, moving the records after it down by one.
func (t *Table) DeleteRecord(recno uint32) error {
	n := t.head.Count
	if recno < 1 || recno > n {
		return ErrOutOfRange
	}

	t.scratch = grow(t.scratch, int(t.head.RecordSize))
	for i := recno + 1; i <= n; i++ {
		t.readRecordAt(i, t.scratch)
		t.writeRecordAt(i-1, t.scratch)
	}
	t.log.Debug("records shifted down", zap.Uint32("from", recno), zap.Uint32("moved", n-recno))

	t.head.Count--
	t.writeHead()
	return nil
}

// Clear empties the table, keeping its geometry. Record bytes are not wiped.
func (t *Table) Clear() error {
	head := t.readHead(t.base)
	return t.Create(t.base, head.TableSize, head.RecordSize)
}

// Iterate calls fn for every record in order. It stops at the first error fn returns.
// rec is only valid until fn returns.
func (t *Table) Iterate(fn func(recno uint32, rec []byte) error) error {
	buf := make([]byte, t.head.RecordSize)
	for i := uint32(1); i <= t.head.Count; i++ {
		t.readRecordAt(i, buf)
		if err := fn(i, buf); err != nil {
			return err
		}
	}
	return nil
}

// addr returns the store address of record recno.
func (t *Table) addr(recno uint32) uint64 {
	return t.base + HeaderSize + uint64(recno-1)*uint64(t.head.RecordSize)
}

// writeRecordAt writes rec at recno without checking recno against Count.
// rec is truncated or zero-padded to the record size.
func (t *Table) writeRecordAt(recno uint32, rec []byte) {
	rs := int(t.head.RecordSize)
	if len(rec) < rs {
		t.pad = grow(t.pad, rs)
		n := copy(t.pad, rec)
		clear(t.pad[n:])
		rec = t.pad
	}
	writeBytes(t.store, t.addr(recno), rec[:rs])
}

func (t *Table) readRecordAt(recno uint32, out []byte) {
	readBytes(t.store, t.addr(recno), out[:t.head.RecordSize])
}

func (t *Table) writeHead() {
	t.head.encode(t.hbuf[:])
	writeBytes(t.store, t.base, t.hbuf[:])
}

func (t *Table) readHead(base uint64) Header {
	var h Header
	readBytes(t.store, base, t.hbuf[:])
	h.decode(t.hbuf[:])
	return h
}

// grow returns b resliced to n bytes, reallocating only when it is too small.
func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}
