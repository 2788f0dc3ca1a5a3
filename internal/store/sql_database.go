package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/appetrosyan/partial-config/internal/logger"
	"github.com/appetrosyan/partial-config/migrations"
)

// Dialect is the database/sql driver name, which doubles as the goose
// dialect.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ParseDSN picks the dialect for dsn and returns the data source name the
// driver expects. postgres:// and postgresql:// URLs go to pgx; sqlite://
// URLs, file: URIs and bare paths go to sqlite3.
func ParseDSN(dsn string) (Dialect, string, error) {
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"), !strings.Contains(dsn, "://"):
		return DialectSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn)
	}
}

// Open connects to the settings database named by dsn and applies the
// migrations.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dialect, source, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, source, log)
	default:
		db, err = NewConnectSQLite(ctx, source, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Dialect reports the driver in use.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Placeholder returns the bind parameter style of the dialect.
func (db *DB) Placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}
