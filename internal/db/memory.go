package db

import (
	"context"
	"slices"
	"sync"
)

// MemoryTable keeps records in process memory. Everything is lost on restart.
type MemoryTable[T Record] struct {
	mu   sync.RWMutex
	rows []T
}

func NewMemoryTable[T Record]() *MemoryTable[T] {
	return &MemoryTable[T]{}
}

func (m *MemoryTable[T]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.rows), nil
}

func (m *MemoryTable[T]) ByID(_ context.Context, id int) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	row := m.rows[i]
	return &row, nil
}

func (m *MemoryTable[T]) Insert(_ context.Context, pos Position, build func(id int) T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row := build(nextID(m.rows))
	if pos == Prepend {
		m.rows = slices.Insert(m.rows, 0, row)
	} else {
		m.rows = append(m.rows, row)
	}

	return row, nil
}

func (m *MemoryTable[T]) Update(_ context.Context, id int, apply func(*T)) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, nil
	}

	row := m.rows[i]
	apply(&row)
	m.rows[i] = row

	return &row, nil
}

func (m *MemoryTable[T]) Delete(_ context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}

	m.rows = slices.Delete(m.rows, i, i+1)
	return true, nil
}

func (m *MemoryTable[T]) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.rows), nil
}

func (m *MemoryTable[T]) Reset(_ context.Context, seed []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rows = slices.Clone(seed)
	return nil
}

// indexOf must be called with mu held.
func (m *MemoryTable[T]) indexOf(id int) int {
	return slices.IndexFunc(m.rows, func(row T) bool {
		return row.RecordID() == id
	})
}
