package file

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-edb/pkg/edb"
)

var (
	_ edb.ByteStore  = (*Store)(nil)
	_ edb.BlockStore = (*Store)(nil)
)

// ReaderAtWriterAt is the random access medium a Store sits on, usually an *os.File.
type ReaderAtWriterAt interface {
	io.ReaderAt
	io.WriterAt
}

type syncer interface {
	Sync() error
}

// Store is a byte store backed by a file. Reads past the end of the file return zero.
//
// The first I/O failure is kept and returned by Err. After it, writes are dropped and
// reads return zero.
type Store struct {
	f    ReaderAtWriterAt
	log  *zap.Logger
	sync bool
	err  error
	one  [1]byte
}

// Open opens or creates the file at path. When sync is set, Close flushes the file to disk.
func Open(path string, sync bool, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	s := New(f, log)
	s.sync = sync
	return s, nil
}

// New wraps f. A nil log discards failures.
func New(f ReaderAtWriterAt, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{f: f, log: log}
}

func (s *Store) StoreByte(addr uint64, v byte) {
	s.one[0] = v
	s.StoreBlock(addr, s.one[:])
}

func (s *Store) LoadByte(addr uint64) byte {
	s.LoadBlock(addr, s.one[:])
	return s.one[0]
}

func (s *Store) StoreBlock(addr uint64, p []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.f.WriteAt(p, int64(addr)); err != nil {
		s.fail(errors.Wrapf(err, "write %d bytes at %d", len(p), addr))
	}
}

func (s *Store) LoadBlock(addr uint64, p []byte) {
	if s.err != nil {
		clear(p)
		return
	}
	n, err := s.f.ReadAt(p, int64(addr))
	clear(p[n:])
	if err != nil && err != io.EOF {
		s.fail(errors.Wrapf(err, "read %d bytes at %d", len(p), addr))
		clear(p)
	}
}

// Err returns the first I/O error the store hit.
func (s *Store) Err() error {
	return s.err
}

// Close syncs the file if requested and closes it.
func (s *Store) Close() error {
	var err error
	if sf, ok := s.f.(syncer); ok && s.sync {
		err = errors.Wrap(sf.Sync(), "failed to sync")
	}
	if c, ok := s.f.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close")
		}
	}
	return err
}

func (s *Store) fail(err error) {
	s.err = err
	s.log.Error("file store failed", zap.Error(err))
}
