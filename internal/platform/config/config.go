package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"vaxreg/internal/records/workflow"
	"vaxreg/internal/vaccine"
	platformstrings "vaxreg/pkg/platform/strings"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Environment variables read by FromEnv.
const (
	EnvConfigFile  = "VAXREG_CONFIG"
	EnvAddr        = "VAXREG_ADDR"
	EnvStoreDriver = "VAXREG_STORE_DRIVER"
	EnvDataDir     = "VAXREG_DATA_DIR"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvLogLevel    = "VAXREG_LOG_LEVEL"
	EnvLogFormat   = "VAXREG_LOG_FORMAT"
)

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Store    StoreConfig     `yaml:"store"`
	Postgres PostgresConfig  `yaml:"postgres"`
	Redis    RedisConfig     `yaml:"redis"`
	Logging  LoggingConfig   `yaml:"logging"`
	Audit    AuditConfig     `yaml:"audit"`
	Vaccines []VaccineConfig `yaml:"vaccines"`
	Centres  []string        `yaml:"centres"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver       string `yaml:"driver"`
	DataDir      string `yaml:"data_dir"`
	PatientsFile string `yaml:"patients_file"`
	DosesFile    string `yaml:"doses_file"`
}

// PatientsPath joins DataDir and PatientsFile.
func (c StoreConfig) PatientsPath() string {
	return filepath.Join(c.DataDir, c.PatientsFile)
}

// DosesPath joins DataDir and DosesFile.
func (c StoreConfig) DosesPath() string {
	return filepath.Join(c.DataDir, c.DosesFile)
}

type PostgresConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL          string        `yaml:"url"`
	Prefix       string        `yaml:"prefix"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AuditConfig struct {
	Buffer int `yaml:"buffer"`
}

// VaccineConfig is one row of the vaccine rule table. MaxAge is optional.
type VaccineConfig struct {
	Code         string `yaml:"code"`
	Doses        int    `yaml:"doses"`
	IntervalDays int    `yaml:"interval_days"`
	MinAge       int    `yaml:"min_age"`
	MaxAge       *int   `yaml:"max_age"`
}

// Default returns the reference configuration: the five reference vaccines,
// centres VC1 and VC2, and patients.txt / vaccinations.txt in the working
// directory.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// LoadFile reads a YAML configuration, fills unset fields with defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// FromEnv loads the file named by VAXREG_CONFIG, or Default when unset, then
// applies environment overrides.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(EnvConfigFile); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyEnv(cfg, os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := getenv(EnvStoreDriver); v != "" {
		cfg.Store.Driver = strings.ToLower(v)
	}
	if v := getenv(EnvDataDir); v != "" {
		cfg.Store.DataDir = v
	}
	if v := getenv(EnvDatabaseURL); v != "" {
		cfg.Postgres.URL = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		cfg.Redis.URL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
}

func setDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverFile
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = "."
	}
	if cfg.Store.PatientsFile == "" {
		cfg.Store.PatientsFile = "patients.txt"
	}
	if cfg.Store.DosesFile == "" {
		cfg.Store.DosesFile = "vaccinations.txt"
	}

	if cfg.Postgres.MaxOpenConns == 0 {
		cfg.Postgres.MaxOpenConns = 10
	}
	if cfg.Postgres.MaxIdleConns == 0 {
		cfg.Postgres.MaxIdleConns = 5
	}
	if cfg.Postgres.ConnMaxLifetime == 0 {
		cfg.Postgres.ConnMaxLifetime = 30 * time.Minute
	}

	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "vaxreg"
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.Audit.Buffer == 0 {
		cfg.Audit.Buffer = 256
	}

	if len(cfg.Vaccines) == 0 {
		for _, d := range vaccine.Reference().Definitions() {
			cfg.Vaccines = append(cfg.Vaccines, VaccineConfig{
				Code:         string(d.Code),
				Doses:        d.Doses,
				IntervalDays: d.IntervalDays,
				MinAge:       d.MinAge,
				MaxAge:       d.MaxAge,
			})
		}
	}
	cfg.Centres = platformstrings.DedupeAndTrim(cfg.Centres)
	if len(cfg.Centres) == 0 {
		cfg.Centres = []string{"VC1", "VC2"}
	}
}

// Validate checks driver settings, logging options and the rule table.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverMemory:
	case DriverPostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("postgres driver requires postgres.url or %s", EnvDatabaseURL)
		}
	case DriverRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("redis driver requires redis.url or %s", EnvRedisURL)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Logging.Format) {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	if len(c.Centres) == 0 {
		return fmt.Errorf("at least one vaccination centre is required")
	}

	if _, err := c.Rules(); err != nil {
		return err
	}
	return nil
}

// Rules builds the workflow rules from the configured vaccines and centres.
func (c *Config) Rules() (workflow.Rules, error) {
	defs := make([]vaccine.Definition, 0, len(c.Vaccines))
	for _, v := range c.Vaccines {
		defs = append(defs, vaccine.Definition{
			Code:         vaccine.Code(v.Code),
			Doses:        v.Doses,
			IntervalDays: v.IntervalDays,
			MinAge:       v.MinAge,
			MaxAge:       v.MaxAge,
		})
	}
	table, err := vaccine.NewTable(defs...)
	if err != nil {
		return workflow.Rules{}, fmt.Errorf("vaccine table: %w", err)
	}
	return workflow.Rules{Vaccines: table, Centres: slices.Clone(c.Centres)}, nil
}
