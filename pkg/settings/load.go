package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-edb/pkg/edb"
)

const (
	defaultDriver   = "memory"
	defaultLogLevel = "info"
	defaultRedisKey = "edb"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateTable, Table{})
	return v
}

// validateTable rejects geometries that cannot hold a single record.
func validateTable(sl validator.StructLevel) {
	t := sl.Current().Interface().(Table)
	if t.RecordSize == 0 {
		return
	}
	if uint64(t.TableSize) < edb.HeaderSize+uint64(t.RecordSize) {
		sl.ReportError(t.TableSize, "TableSize", "TableSize", "fits_record", "")
	}
}

// Load reads a YAML configuration file, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills in zero values that have a sensible default.
func (c *Config) SetDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaultDriver
	}
	if c.Storage.Key == "" {
		c.Storage.Key = defaultRedisKey
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
