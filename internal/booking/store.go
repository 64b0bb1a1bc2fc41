package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/atelierserenite/wellness-api/internal/httperr"
)

// SessionTTL bounds how long an abandoned wizard survives.
const SessionTTL = 30 * time.Minute

type Store interface {
	Save(ctx context.Context, w *Wizard) error
	Get(ctx context.Context, id string) (*Wizard, error)
	Delete(ctx context.Context, id string) error
}

// --------------------------------------------------
// Redis store
// --------------------------------------------------

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(id string) string {
	return "booking:session:" + id
}

func (s *RedisStore) Save(ctx context.Context, w *Wizard) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(w.ID), raw, SessionTTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Wizard, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, httperr.ErrNotFound("booking_session")
		}
		return nil, err
	}

	var w Wizard
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

// --------------------------------------------------
// In-memory store (no redis configured)
// --------------------------------------------------

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entry
}

type entry struct {
	wizard  Wizard
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]entry)}
}

func (s *MemoryStore) Save(_ context.Context, w *Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[w.ID] = entry{wizard: *w, expires: time.Now().Add(SessionTTL)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || time.Now().After(e.expires) {
		delete(s.sessions, id)
		return nil, httperr.ErrNotFound("booking_session")
	}

	w := e.wizard
	return &w, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
