package settings

type Config struct {
	Logger  Logger  `mapstructure:"logger" yaml:"logger"`
	Storage Storage `mapstructure:"storage" yaml:"storage"`
	Redis   Redis   `mapstructure:"redis" yaml:"redis"`
	Table   Table   `mapstructure:"table" yaml:"table"`
}

// Storage selects the byte store a table lives in.
type Storage struct {
	Driver string `mapstructure:"driver" yaml:"driver" validate:"required,oneof=memory file redis"`
	// Path of the backing file, file driver only.
	Path string `mapstructure:"path" yaml:"path" validate:"required_if=Driver file"`
	// Key holding the table bytes, redis driver only.
	Key string `mapstructure:"key" yaml:"key"`
	// Size preallocated in bytes, memory driver only.
	Size uint64 `mapstructure:"size" yaml:"size"`
	// Sync flushes the file to disk on close.
	Sync bool `mapstructure:"sync" yaml:"sync"`
}

// Table is the geometry of the table to open or create.
// TableSize must leave room for the header and at least one record.
type Table struct {
	BaseAddress uint64 `mapstructure:"base_address" yaml:"base_address"`
	TableSize   uint32 `mapstructure:"table_size" yaml:"table_size" validate:"required"`
	RecordSize  uint32 `mapstructure:"record_size" yaml:"record_size" validate:"required"`
	// CreateIfMissing creates the table when the region at BaseAddress holds none,
	// overwriting whatever bytes sit there.
	CreateIfMissing bool `mapstructure:"create_if_missing" yaml:"create_if_missing"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Redis is the configuration for Redis
type Redis struct {
	Host            string `mapstructure:"host" yaml:"host"`
	Port            int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	Password        string `mapstructure:"password" yaml:"password"`
	Database        int    `mapstructure:"database" yaml:"database" validate:"gte=0"`
	PoolSize        int    `mapstructure:"pool_size" yaml:"pool_size"`
	MinIdleConns    int    `mapstructure:"min_idle_conns" yaml:"min_idle_conns"`
	PoolTimeout     int    `mapstructure:"pool_timeout" yaml:"pool_timeout"`   // Seconds
	DialTimeout     int    `mapstructure:"dial_timeout" yaml:"dial_timeout"`   // Seconds
	ReadTimeout     int    `mapstructure:"read_timeout" yaml:"read_timeout"`   // Seconds
	WriteTimeout    int    `mapstructure:"write_timeout" yaml:"write_timeout"` // Seconds
	MaxRetries      int    `mapstructure:"max_retries" yaml:"max_retries"`
	MaxRetryBackoff int    `mapstructure:"max_retry_backoff" yaml:"max_retry_backoff"` // Milliseconds
	MinRetryBackoff int    `mapstructure:"min_retry_backoff" yaml:"min_retry_backoff"` // Milliseconds
}
