package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sabari1933/hrconsole/internal/domain/profile"
)

// RedisStore is the production default: sessions survive console restarts
// and are shared across replicas.
//
// Each session is a hash with two fixed fields, "user" and "token". Save
// writes user first and token last, so a crash between the two writes can
// only leave a profile without a token, never the reverse.
type RedisStore struct {
	rdb *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisStore(cfg RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) Load(ctx context.Context, id string) (Session, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKey(id)).Result()

	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	token, ok := vals["token"]

	if !ok || token == "" {
		// absent hash and half-written hash both read as no session
		return Session{}, ErrNotFound
	}

	sess := Session{Token: token}

	if raw, ok := vals["user"]; ok && raw != "" {
		var u profile.Profile
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			sess.User = &u
		}
	}

	if raw, ok := vals["meta"]; ok && raw != "" {
		var meta struct {
			CreatedAt time.Time `json:"createdAt"`
			ExpiresAt time.Time `json:"expiresAt"`
		}
		if err := json.Unmarshal([]byte(raw), &meta); err == nil {
			sess.CreatedAt = meta.CreatedAt
			sess.ExpiresAt = meta.ExpiresAt
		}
	}

	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, sess Session) error {
	key := sessionKey(id)

	userJSON := []byte("null")

	if sess.User != nil {
		b, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("marshal session user: %w", err)
		}
		userJSON = b
	}

	meta, err := json.Marshal(struct {
		CreatedAt time.Time `json:"createdAt"`
		ExpiresAt time.Time `json:"expiresAt"`
	}{sess.CreatedAt, sess.ExpiresAt})

	if err != nil {
		return fmt.Errorf("marshal session meta: %w", err)
	}

	// user first, token last
	if err := s.rdb.HSet(ctx, key, "user", string(userJSON), "meta", string(meta)).Err(); err != nil {
		return fmt.Errorf("save session user: %w", err)
	}

	if err := s.rdb.HSet(ctx, key, "token", sess.Token).Err(); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}

	if !sess.ExpiresAt.IsZero() {
		if err := s.rdb.ExpireAt(ctx, key, sess.ExpiresAt).Err(); err != nil {
			return fmt.Errorf("expire session: %w", err)
		}
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	err := s.rdb.Del(ctx, sessionKey(id)).Err()

	// deleting a missing key is a no-op in redis already
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
