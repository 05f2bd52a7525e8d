package postgres

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed migration/*.sql
var migrationFS embed.FS

// DB is a single pgx connection holding the event seed tables.
type DB struct {
	conn    *pgx.Conn
	connStr string
	logger  *zap.Logger

	// Stamped on every row written in one transaction.
	now func() time.Time
}

func NewDB(connStr string, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DB{
		connStr: connStr,
		logger:  logger,
		now:     time.Now,
	}
}

// Open connects and brings the schema up to date.
func (db *DB) Open(ctx context.Context) error {
	if db.connStr == "" {
		return errors.New("postgres connection string required")
	}

	conn, err := pgx.Connect(ctx, db.connStr)
	if err != nil {
		return errors.Wrap(err, "error connecting to postgres")
	}
	db.conn = conn

	if err := db.migrate(ctx); err != nil {
		return errors.Wrap(err, "error migrating events schema")
	}

	return nil
}

func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS migrations (name TEXT PRIMARY KEY);`); err != nil {
		return errors.Wrap(err, "cannot create migrations table")
	}

	names, err := migrationNames()
	if err != nil {
		return err
	}

	applied := 0
	for _, name := range names {
		ran, err := db.applyMigration(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "migration %s", name)
		}
		if ran {
			applied++
		}
	}

	db.logger.Debug("schema up to date", zap.Int("migrationsApplied", applied), zap.Int("migrationsKnown", len(names)))

	return nil
}

// migrationNames lists the embedded migrations in the order they must run.
func migrationNames() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migration/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// applyMigration runs one migration file unless it is already recorded,
// reporting whether it ran.
func (db *DB) applyMigration(ctx context.Context, name string) (bool, error) {
	tx, err := db.conn.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var seen bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM migrations WHERE name = $1)`, name).Scan(&seen); err != nil {
		return false, err
	}
	if seen {
		return false, nil
	}

	script, err := fs.ReadFile(migrationFS, name)
	if err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx, string(script)); err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO migrations (name) VALUES ($1)`, name); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}

	db.logger.Info("migration applied", zap.String("name", name))

	return true, nil
}

func (db *DB) Close(ctx context.Context) error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close(ctx)
}

// Tx carries the write timestamp shared by every row of one save.
type Tx struct {
	pgx.Tx
	now time.Time
}

func (db *DB) BeginTx(ctx context.Context) (*Tx, error) {
	if db.conn == nil {
		return nil, errors.New("postgres connection not open")
	}

	tx, err := db.conn.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error starting transaction")
	}

	return &Tx{
		Tx:  tx,
		now: db.now().UTC().Truncate(time.Second),
	}, nil
}
