package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userhub/internal/client/migrations"
	"github.com/dmitrijs2005/userhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/userhub/internal/dbx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const (
	keyToken = "token"
	keyEmail = "email"
)

// SQLiteStore keeps the session in the metadata table of a local SQLite
// database, so a CLI login survives restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens the database at dsn with the modernc driver. Call Init
// before use.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Init applies pending migrations and drops a persisted empty token, so
// that a half-written session never looks authenticated.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if err := runMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("migrate session db: %w", err)
	}

	cur, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if !cur.Authenticated() {
		return s.Clear(ctx)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	r := s.repo(s.db)

	token, err := r.Get(ctx, keyToken)
	if err != nil {
		return Session{}, err
	}
	email, err := r.Get(ctx, keyEmail)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: string(token), Email: string(email)}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return r.Set(ctx, keyEmail, []byte(sess.Email))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, keyToken); err != nil {
			return err
		}
		return r.Delete(ctx, keyEmail)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
