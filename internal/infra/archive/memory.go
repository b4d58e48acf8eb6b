package archive

import (
	"context"
	"sync"
)

// Object is a stored blob with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// MemoryArchive keeps exported objects in memory for local runs and tests.
type MemoryArchive struct {
	mu      sync.RWMutex
	objects map[string]Object
}

// NewMemoryArchive constructs an empty archive.
func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{objects: make(map[string]Object)}
}

// Put stores a copy of data under key.
func (a *MemoryArchive) Put(_ context.Context, key string, data []byte, contentType string) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.objects[key] = Object{Data: cp, ContentType: contentType}
	return nil
}

// Get returns the object stored under key.
func (a *MemoryArchive) Get(key string) (Object, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	obj, ok := a.objects[key]
	return obj, ok
}
