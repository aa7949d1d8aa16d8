package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session state keyed by the session-id cookie value.
type Store interface {
	Load(ctx context.Context, key string) (*State, error)
	Save(ctx context.Context, key string, state *State) error
}

// MemoryStore is the single-process default.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]string)}
}

func (m *MemoryStore) Load(ctx context.Context, key string) (*State, error) {
	m.mu.RLock()
	encoded := m.states[key]
	m.mu.RUnlock()
	return Decode(encoded)
}

func (m *MemoryStore) Save(ctx context.Context, key string, state *State) error {
	encoded, err := state.Encode()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.states[key] = encoded
	m.mu.Unlock()
	return nil
}

// RedisStore survives restarts and multiple instances.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		TTL:    24 * time.Hour,
	}
}

func (r *RedisStore) Load(ctx context.Context, key string) (*State, error) {
	encoded, err := r.Client.Get(ctx, "session:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return &State{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(encoded)
}

func (r *RedisStore) Save(ctx context.Context, key string, state *State) error {
	encoded, err := state.Encode()
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, "session:"+key, encoded, r.TTL).Err()
}
