package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/akyairhashvil/calmtide/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Database is the sqlite-backed history of breathing sessions and user
// preferences. It never stores live timer state.
type Database struct {
	DB     *sql.DB
	dbFile string
	log    *logger.Logger
}

// Open connects to the sqlite file at path and applies pending migrations.
func Open(ctx context.Context, path string, log *logger.Logger) (*Database, error) {
	if log == nil {
		log = logger.Nop()
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: path, log: log.Component("database")}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	d.log.Debug().Str("path", path).Msg("database ready")
	return d, nil
}

func (d *Database) migrate(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{d.log})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, d.DB, "migrations"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Path returns the sqlite file backing the database.
func (d *Database) Path() string {
	return d.dbFile
}

// Close releases the connection pool.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// gooseLogger routes migration output into the application log instead of
// stdout, which belongs to the terminal UI.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Debug().Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error().Msgf(format, v...)
}
