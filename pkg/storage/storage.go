package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-edb/pkg/edb"
	"github.com/huynhanx03/go-edb/pkg/settings"
	"github.com/huynhanx03/go-edb/pkg/storage/file"
	"github.com/huynhanx03/go-edb/pkg/storage/memory"
	"github.com/huynhanx03/go-edb/pkg/storage/redis"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is a byte store with a lifecycle. Err reports the first failure of the
// underlying medium, which the table itself cannot see.
type Store interface {
	edb.ByteStore
	edb.BlockStore
	io.Closer
	Err() error
}

var (
	_ Store = (*memory.Store)(nil)
	_ Store = (*file.Store)(nil)
	_ Store = (*redis.Store)(nil)
)

// New opens the store selected by cfg.Storage.
func New(ctx context.Context, cfg *settings.Config, log *zap.Logger) (Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Storage.Driver {
	case DriverMemory, "":
		return memory.New(int(cfg.Storage.Size)), nil
	case DriverFile:
		s, err := file.Open(cfg.Storage.Path, cfg.Storage.Sync, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverRedis:
		s, err := redis.NewConnection(ctx, &cfg.Redis, cfg.Storage.Key, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "driver %q", cfg.Storage.Driver)
	}
}

// OpenTable opens the store and the table configured in cfg. When the region at the
// configured base address holds no table, one is created with the configured geometry
// if cfg.Table.CreateIfMissing is set; otherwise edb.ErrNotATable is returned.
func OpenTable(ctx context.Context, cfg *settings.Config, log *zap.Logger) (*edb.Table, Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	store, err := New(ctx, cfg, log)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open storage")
	}

	tc := cfg.Table
	tbl := edb.New(store, edb.WithLogger(log))
	err = tbl.Open(tc.BaseAddress)
	if errors.Is(err, edb.ErrNotATable) && tc.CreateIfMissing {
		var raw [edb.HeaderSize]byte
		store.LoadBlock(tc.BaseAddress, raw[:])
		log.Warn("no table found, creating one over the existing bytes",
			zap.String("driver", cfg.Storage.Driver),
			zap.Uint64("base", tc.BaseAddress),
			zap.Binary("found", raw[:]))
		err = tbl.Create(tc.BaseAddress, tc.TableSize, tc.RecordSize)
	}
	if err == nil {
		err = store.Err()
	}
	if err != nil {
		_ = store.Close()
		return nil, nil, errors.Wrap(err, "failed to open table")
	}
	return tbl, store, nil
}
