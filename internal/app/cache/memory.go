package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryStore хранит записи в памяти процесса. Объем ограничен LRU,
// истекшие записи удаляются лениво при чтении.
type MemoryStore struct {
	entries *lru.Cache[string, *Entry]
	now     func() time.Time
}

func NewMemoryStore(capacity int) (*MemoryStore, error) {
	entries, err := lru.New[string, *Entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("create memory store: %w", err)
	}
	return &MemoryStore{entries: entries, now: time.Now}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	entry, ok := s.entries.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if entry.IsExpired(s.now()) {
		s.entries.Remove(key)
		return nil, ErrCacheMiss
	}
	return entry, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry *Entry) error {
	s.entries.Add(key, entry)
	return nil
}

// Len число записей, включая еще не вычищенные истекшие
func (s *MemoryStore) Len() int {
	return s.entries.Len()
}
