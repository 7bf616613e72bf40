package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sabari1933/hrconsole/internal/domain/profile"
)

// PostgresStore backs sessions with the sessions table for deployments that
// already run Postgres and do not want a Redis dependency.
//
//	CREATE TABLE sessions (
//	    id         TEXT PRIMARY KEY,
//	    user_json  JSONB,
//	    token      TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL,
//	    expires_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func NewPool(dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)

	if err != nil {
		return nil, err
	}

	cfg.MaxConns = 5

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)

	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) (Session, error) {
	var (
		sess     Session
		userJSON []byte
	)

	err := s.pool.QueryRow(ctx,
		`SELECT token, user_json, created_at, expires_at
		 FROM sessions
		 WHERE id = $1 AND token <> '' AND expires_at > NOW()`,
		id,
	).Scan(&sess.Token, &userJSON, &sess.CreatedAt, &sess.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, ErrNotFound
		}

		return Session{}, fmt.Errorf("load session: %w", err)
	}

	if len(userJSON) > 0 {
		var u profile.Profile
		if err := json.Unmarshal(userJSON, &u); err == nil && u != (profile.Profile{}) {
			sess.User = &u
		}
	}

	return sess, nil
}

func (s *PostgresStore) Save(ctx context.Context, id string, sess Session) error {
	userJSON := []byte("null")

	if sess.User != nil {
		b, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("marshal session user: %w", err)
		}
		userJSON = b
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})

	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	defer func() { _ = tx.Rollback(ctx) }()

	// row with profile first, token filled in last
	_, err = tx.Exec(ctx,
		`INSERT INTO sessions (id, user_json, token, created_at, expires_at)
		 VALUES ($1, $2, '', $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET user_json = EXCLUDED.user_json,
		     token = '',
		     created_at = EXCLUDED.created_at,
		     expires_at = EXCLUDED.expires_at`,
		id, userJSON, sess.CreatedAt, sess.ExpiresAt,
	)

	if err != nil {
		return fmt.Errorf("save session user: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE sessions SET token = $2 WHERE id = $1`,
		id, sess.Token,
	)

	if err != nil {
		return fmt.Errorf("save session token: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) Clear(ctx context.Context, id string) error {
	// affected row count is irrelevant, clearing twice is fine
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
