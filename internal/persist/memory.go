package persist

import (
	"context"
	"maps"
	"sync"
)

type memory struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemory returns a process-local store. Parts are kept encoded so callers
// never share memory with the store.
func NewMemory() Store {
	return &memory{data: make(map[string]map[string][]byte)}
}

func (m *memory) Load(_ context.Context, namespace string) (*Snapshot, error) {
	m.mu.RLock()
	parts := maps.Clone(m.data[namespace])
	m.mu.RUnlock()

	return decode(parts)
}

func (m *memory) Save(_ context.Context, namespace string, snap *Snapshot) error {
	parts, err := encode(snap)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string][]byte, len(parts))
		m.data[namespace] = ns
	}
	for _, p := range parts {
		ns[p.key] = p.value
	}
	return nil
}

func (m *memory) Delete(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[namespace]; !ok {
		return ErrNotFound
	}
	delete(m.data, namespace)
	return nil
}
