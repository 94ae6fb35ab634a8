package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStorage is an in-memory Storage for tests and credential-free local
// development. Blobs live in a map guarded by a mutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]Object
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		objects: make(map[string]Object),
	}
}

func (s *MemoryStorage) Save(ctx context.Context, key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read blob: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = Object{Body: data, ContentType: contentType}
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}

	// Copy so callers cannot mutate the stored blob.
	body := make([]byte, len(obj.Body))
	copy(body, obj.Body)
	return &Object{Body: body, ContentType: obj.ContentType}, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Len reports the number of stored blobs.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
