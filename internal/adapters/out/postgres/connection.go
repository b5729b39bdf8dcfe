package postgres

import (
	"fmt"

	"logistics/internal/pkg/errs"

	// Registers the "postgres" database/sql driver used when DriverName is
	// DriverLibPQ.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database/sql drivers.
const (
	DriverPGX   = "pgx"
	DriverLibPQ = "postgres"
)

// ConnectionConfig describes how to reach the database.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Driver   string
}

// DSN renders the key/value connection string understood by both drivers.
func (c ConnectionConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Dialector picks the GORM dialector for the configured driver. The default
// is pgx; DriverLibPQ routes through github.com/lib/pq.
func (c ConnectionConfig) Dialector() (gorm.Dialector, error) {
	switch c.Driver {
	case "", DriverPGX:
		return gormpostgres.Open(c.DSN()), nil
	case DriverLibPQ:
		return gormpostgres.New(gormpostgres.Config{DriverName: DriverLibPQ, DSN: c.DSN()}), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("db driver", fmt.Errorf("unsupported driver %q", c.Driver))
	}
}

// OpenDB opens a GORM connection with SQL logging silenced.
func OpenDB(c ConnectionConfig) (*gorm.DB, error) {
	dialector, err := c.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
