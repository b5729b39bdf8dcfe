package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"logistics/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Event bus implementations.
const (
	EventBusMemory = "memory"
	EventBusRedis  = "redis"
)

type Config struct {
	HTTPPort   string
	LogLevel   string
	APILatency time.Duration
	RateLimit  float64

	StorageDriver string
	StorageDir    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBDriver   string

	RedisURL       string
	RedisKeyPrefix string

	EventBus string

	OriginLatitude  float64
	OriginLongitude float64

	DemoAutocomplete bool
	NotificationTTL  time.Duration
}

// DefaultConfig returns the settings used for keys that are not set.
func DefaultConfig() Config {
	return Config{
		HTTPPort:         "8080",
		LogLevel:         "info",
		APILatency:       500 * time.Millisecond,
		RateLimit:        20,
		StorageDriver:    StorageFile,
		StorageDir:       "./data",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBSslMode:        "disable",
		RedisKeyPrefix:   "logistics:",
		EventBus:         EventBusMemory,
		OriginLatitude:   38.7169,
		OriginLongitude:  -9.1399,
		DemoAutocomplete: true,
		NotificationTTL:  10 * time.Second,
	}
}

// LoadDotEnv loads path into the process environment. A missing file is
// not an error; variables already set win over the file.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	return ParseConfig(os.LookupEnv)
}

// ParseConfig builds a Config from lookup, starting from DefaultConfig.
// Every malformed value is reported.
func ParseConfig(lookup func(string) (string, bool)) (Config, error) {
	c := DefaultConfig()
	p := parser{lookup: lookup}

	p.str("HTTP_PORT", &c.HTTPPort)
	p.str("LOG_LEVEL", &c.LogLevel)
	p.duration("API_LATENCY", &c.APILatency)
	p.float("RATE_LIMIT", &c.RateLimit)

	p.oneOf("STORAGE_DRIVER", &c.StorageDriver, StorageFile, StorageMemory, StoragePostgres, StorageRedis)
	p.str("STORAGE_DIR", &c.StorageDir)

	p.str("DB_HOST", &c.DBHost)
	p.str("DB_PORT", &c.DBPort)
	p.str("DB_USER", &c.DBUser)
	p.str("DB_PASSWORD", &c.DBPassword)
	p.str("DB_NAME", &c.DBName)
	p.str("DB_SSLMODE", &c.DBSslMode)
	p.str("DB_DRIVER", &c.DBDriver)

	p.str("REDIS_URL", &c.RedisURL)
	p.str("REDIS_KEY_PREFIX", &c.RedisKeyPrefix)

	p.oneOf("EVENT_BUS", &c.EventBus, EventBusMemory, EventBusRedis)

	p.float("ORIGIN_LATITUDE", &c.OriginLatitude)
	p.float("ORIGIN_LONGITUDE", &c.OriginLongitude)

	p.boolean("DEMO_AUTOCOMPLETE", &c.DemoAutocomplete)
	p.duration("NOTIFICATION_TTL", &c.NotificationTTL)

	if c.APILatency < 0 {
		p.errs = append(p.errs, errs.NewValueIsOutOfRangeError("API_LATENCY", c.APILatency, 0, "inf"))
	}
	if (c.StorageDriver == StorageRedis || c.EventBus == EventBusRedis) && c.RedisURL == "" {
		p.errs = append(p.errs, errs.NewValueIsRequiredError("REDIS_URL"))
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return c, nil
}

type parser struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (p *parser) get(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func (p *parser) str(key string, dst *string) {
	if v, ok := p.get(key); ok {
		*dst = v
	}
}

func (p *parser) oneOf(key string, dst *string, allowed ...string) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			*dst = v
			return
		}
	}
	p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key,
		errors.New("expected one of "+strings.Join(allowed, ", "))))
}

func (p *parser) duration(key string, dst *time.Duration) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = d
}

func (p *parser) float(key string, dst *float64) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = f
}

func (p *parser) boolean(key string, dst *bool) {
	v, ok := p.get(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = b
}
