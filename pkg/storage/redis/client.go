package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	redisV9 "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-edb/pkg/edb"
	"github.com/huynhanx03/go-edb/pkg/settings"
	"github.com/huynhanx03/go-edb/pkg/utils"
)

const (
	defaultPoolSize        = 10
	defaultMinIdleConns    = 5
	defaultPoolTimeout     = 5
	defaultDialTimeout     = 5
	defaultReadTimeout     = 3
	defaultWriteTimeout    = 3
	defaultMaxRetries      = 3
	defaultMinRetryBackoff = 300 // millis
	defaultMaxRetryBackoff = 500 // millis

	pingTimeout = 5 * time.Second
)

var (
	_ edb.ByteStore  = (*Store)(nil)
	_ edb.BlockStore = (*Store)(nil)
)

// Store keeps the whole address space in a single Redis string value,
// read with GETRANGE and written with SETRANGE.
//
// The first failed command is kept and returned by Err. After it, writes are dropped
// and reads return zero.
type Store struct {
	client  *redisV9.Client
	key     string
	timeout time.Duration
	log     *zap.Logger
	err     error
}

// NewConnection dials Redis using cfg and returns a Store over key.
func NewConnection(ctx context.Context, cfg *settings.Redis, key string, log *zap.Logger) (*Store, error) {
	setDefaultConfig(cfg)

	addr := cfg.Host
	if cfg.Port > 0 {
		addr = fmt.Sprintf("%s:%d", addr, cfg.Port)
	}

	client := redisV9.NewClient(&redisV9.Options{
		Addr:            addr,
		Password:        cfg.Password,
		DB:              cfg.Database,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdleConns,
		MaxRetries:      cfg.MaxRetries,
		DialTimeout:     utils.ToDuration(cfg.DialTimeout),
		ReadTimeout:     utils.ToDuration(cfg.ReadTimeout),
		WriteTimeout:    utils.ToDuration(cfg.WriteTimeout),
		PoolTimeout:     utils.ToDuration(cfg.PoolTimeout),
		MinRetryBackoff: utils.ToDurationMs(cfg.MinRetryBackoff),
		MaxRetryBackoff: utils.ToDurationMs(cfg.MaxRetryBackoff),
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w: %v", ErrConnectionFailed, ErrPingFailed, err)
	}

	s := New(client, key, log)
	s.timeout = utils.ToDuration(cfg.ReadTimeout + cfg.WriteTimeout)
	return s, nil
}

// New returns a Store over key using an existing client. A nil log discards failures.
func New(client *redisV9.Client, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		client:  client,
		key:     key,
		timeout: utils.ToDuration(defaultReadTimeout + defaultWriteTimeout),
		log:     log,
	}
}

// setDefaultConfig sets default values for Redis configuration
func setDefaultConfig(cfg *settings.Redis) {
	if cfg.PoolSize == 0 {
		cfg.PoolSize = defaultPoolSize
	}
	if cfg.MinIdleConns == 0 {
		cfg.MinIdleConns = defaultMinIdleConns
	}
	if cfg.PoolTimeout == 0 {
		cfg.PoolTimeout = defaultPoolTimeout
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.MinRetryBackoff == 0 {
		cfg.MinRetryBackoff = defaultMinRetryBackoff
	}
	if cfg.MaxRetryBackoff == 0 {
		cfg.MaxRetryBackoff = defaultMaxRetryBackoff
	}
}

func (s *Store) StoreByte(addr uint64, v byte) {
	s.StoreBlock(addr, []byte{v})
}

func (s *Store) LoadByte(addr uint64) byte {
	var b [1]byte
	s.LoadBlock(addr, b[:])
	return b[0]
}

func (s *Store) StoreBlock(addr uint64, p []byte) {
	if s.err != nil || len(p) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.SetRange(ctx, s.key, int64(addr), string(p)).Err(); err != nil {
		s.fail(errors.Wrapf(err, "setrange %s %d", s.key, addr))
	}
}

func (s *Store) LoadBlock(addr uint64, p []byte) {
	if s.err != nil || len(p) == 0 {
		clear(p)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	end := int64(addr) + int64(len(p)) - 1
	val, err := s.client.GetRange(ctx, s.key, int64(addr), end).Result()
	if err != nil {
		s.fail(errors.Wrapf(err, "getrange %s %d %d", s.key, addr, end))
		clear(p)
		return
	}
	n := copy(p, val)
	clear(p[n:])
}

// Err returns the first command error the store hit.
func (s *Store) Err() error {
	return s.err
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) fail(err error) {
	s.err = err
	s.log.Error("redis store failed", zap.String("key", s.key), zap.Error(err))
}
