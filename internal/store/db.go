package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// SQLite is the default profile store, one file under the data dir.
type SQLite struct {
	Pool *sql.DB
}

// OpenSQLite opens path and brings the schema up to date. Migrations run
// under a lock file so two processes starting together don't race.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite typically wants 1 writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.PingContext(pctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	if err := migrateLocked(ctx, pool, path+".lock"); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return &SQLite{Pool: pool}, nil
}

func migrateLocked(ctx context.Context, pool *sql.DB, lockPath string) error {
	fl := flock.New(lockPath)
	lctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	locked, err := fl.TryLockContext(lctx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", lockPath)
	}
	defer func() { _ = fl.Unlock() }()

	if err := Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (d *SQLite) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
