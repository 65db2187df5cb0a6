// Package store persists resolved company profiles between runs.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"payrise-engine/internal/domain"
)

// ProfileStore is the company profile cache. Implementations are safe for
// concurrent use; the last writer for a company wins.
type ProfileStore interface {
	// GetProfile returns ok=false when nothing is stored for companyID.
	GetProfile(ctx context.Context, companyID string) (p domain.CompanyProfile, ok bool, err error)
	PutProfile(ctx context.Context, p domain.CompanyProfile) error
	// PruneProfiles deletes profiles fetched before olderThan.
	PruneProfiles(ctx context.Context, olderThan time.Time) (int64, error)
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend  string // sqlite | redis | memory
	DataDir  string
	RedisURL string
	TTL      time.Duration
}

// OpenProfileStore opens the configured backend.
func OpenProfileStore(ctx context.Context, opts Options) (ProfileStore, error) {
	switch opts.Backend {
	case "", "sqlite":
		return OpenSQLite(ctx, filepath.Join(opts.DataDir, "payrise.db"))
	case "redis":
		return OpenRedis(ctx, opts.RedisURL, opts.TTL)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown profile store backend %q", opts.Backend)
	}
}
