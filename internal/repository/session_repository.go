package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/campushub/pkg/cache"
)

type sessionEntry struct {
	sidebarOpen bool
	expiresAt   time.Time
}

// MemorySessionStore keeps shell state per session in process memory.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemorySessionStore constructs an in-memory store whose entries expire
// after ttl without activity.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemorySessionStore{entries: make(map[string]sessionEntry), ttl: ttl, now: time.Now}
}

func (s *MemorySessionStore) load(id string) sessionEntry {
	entry, ok := s.entries[id]
	if ok && s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return sessionEntry{}
	}
	return entry
}

// SidebarOpen reports the sidebar flag. Unknown sessions read as closed.
func (s *MemorySessionStore) SidebarOpen(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id).sidebarOpen, nil
}

// SetSidebarOpen stores the sidebar flag.
func (s *MemorySessionStore) SetSidebarOpen(_ context.Context, id string, open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = sessionEntry{sidebarOpen: open, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// ToggleSidebar flips the flag and returns the new value.
func (s *MemorySessionStore) ToggleSidebar(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := !s.load(id).sidebarOpen
	s.entries[id] = sessionEntry{sidebarOpen: open, expiresAt: s.now().Add(s.ttl)}
	return open, nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

var toggleScript = redis.NewScript(`
local open = redis.call('GET', KEYS[1])
local next = '1'
if open == '1' then next = '0' end
redis.call('SET', KEYS[1], next, 'PX', ARGV[1])
return tonumber(next)
`)

// RedisSessionStore shares shell state between instances.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore constructs a Redis backed session store.
func NewRedisSessionStore(client *redis.Client, prefix string, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisSessionStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisSessionStore) key(id string) string {
	return cache.Key(s.prefix, "session", id, "sidebar")
}

// SidebarOpen reports the sidebar flag. Unknown sessions read as closed.
func (s *RedisSessionStore) SidebarOpen(ctx context.Context, id string) (bool, error) {
	value, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get session %s: %w", id, err)
	}
	return value == "1", nil
}

// SetSidebarOpen stores the sidebar flag.
func (s *RedisSessionStore) SetSidebarOpen(ctx context.Context, id string, open bool) error {
	value := "0"
	if open {
		value = "1"
	}
	if err := s.client.Set(ctx, s.key(id), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", id, err)
	}
	return nil
}

// ToggleSidebar flips the flag atomically and returns the new value.
func (s *RedisSessionStore) ToggleSidebar(ctx context.Context, id string) (bool, error) {
	next, err := toggleScript.Run(ctx, s.client, []string{s.key(id)}, s.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("redis toggle session %s: %w", id, err)
	}
	return next == 1, nil
}
