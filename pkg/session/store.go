package session

import (
	"sync"
	"time"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/cache"
)

// Store persists session data between requests.
type Store interface {
	Read(id string) (map[string]interface{}, bool)
	Write(id string, data map[string]interface{}, ttl time.Duration) error
	Destroy(id string) error
}

// activeStore is chosen at boot: Redis when reachable, in-memory otherwise.
// Tests swap it via UseStore.
var (
	storeMu     sync.RWMutex
	activeStore Store = NewMemoryStore()
)

// UseStore replaces the backing store.
func UseStore(s Store) {
	storeMu.Lock()
	activeStore = s
	storeMu.Unlock()
}

// SelectStore picks the Redis store when a connection is available.
// Call after cache.Connect at boot.
func SelectStore() {
	if cache.Available() {
		UseStore(RedisStore{})
	}
}

func store() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return activeStore
}

// ─── Redis driver ─────────────────────────────────────────────────────────────

// RedisStore keeps sessions in Redis with a TTL, surviving restarts and
// shared across processes.
type RedisStore struct{}

func redisKey(id string) string { return "crm:session:" + id }

func (RedisStore) Read(id string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data, true
	}
	return nil, false
}

func (RedisStore) Write(id string, data map[string]interface{}, ttl time.Duration) error {
	return cache.Set(redisKey(id), data, ttl)
}

func (RedisStore) Destroy(id string) error {
	return cache.Del(redisKey(id))
}

// ─── Memory driver ────────────────────────────────────────────────────────────

// MemoryStore is a single-process fallback used in development and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Read(id string) (map[string]interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		return nil, false
	}
	return entry.data, true
}

func (m *MemoryStore) Write(id string, data map[string]interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}

	// Opportunistic sweep keeps the map from growing unbounded.
	if len(m.sessions) > 1024 {
		now := time.Now()
		for k, e := range m.sessions {
			if now.After(e.expiresAt) {
				delete(m.sessions, k)
			}
		}
	}
	return nil
}

func (m *MemoryStore) Destroy(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
