package adventures

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/models"
	"github.com/dmitrijs2005/adventures/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Store is the lazily-initialized owner of the database handle. The pool is
// opened, pinged and provisioned on first use and then reused for the
// process lifetime; a failed attempt is not memoized, so the next call
// dials again.
//
// An empty DSN or one still holding a placeholder value means the backend
// is not configured: every operation fails with common.ErrBackendUnavailable
// without dialing, and transient connection failures surface the same way.
type Store struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

// NewStore returns a store for the given DSN. No connection is made here.
func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

func (s *Store) configured() bool {
	return s.dsn != "" && !strings.Contains(s.dsn, "<your-")
}

// handle returns the shared *sql.DB, opening and provisioning it on first
// use. Provisioning runs embedded goose migrations, which are create-if-not-
// exists and therefore safe to race across cold starts.
func (s *Store) handle(ctx context.Context) (*sql.DB, error) {
	if !s.configured() {
		return nil, fmt.Errorf("%w: database connection string not configured", common.ErrBackendUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("pgx", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	if err := s.runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	s.db = db
	return s.db, nil
}

func (s *Store) runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// FetchAll implements Repository.
func (s *Store) FetchAll(ctx context.Context) (map[string][]models.Document, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}
	return NewPostgresRepository(db).FetchAll(ctx)
}

// Upsert implements Repository.
func (s *Store) Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}
	return NewPostgresRepository(db).Upsert(ctx, category, adventure)
}

// Delete implements Repository.
func (s *Store) Delete(ctx context.Context, category string, id string) error {
	db, err := s.handle(ctx)
	if err != nil {
		return err
	}
	return NewPostgresRepository(db).Delete(ctx, category, id)
}

// Close releases the pool if it was ever opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
