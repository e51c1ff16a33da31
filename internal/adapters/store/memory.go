package store

import (
	"sync"

	"dev.rubentxu.step7-service/internal/core/domain"
	"dev.rubentxu.step7-service/internal/core/ports"
)

// Memory guarda los últimos registros en un buffer circular.
type Memory struct {
	mu      sync.RWMutex
	records []domain.CallRecord
	next    int
	full    bool
	logger  ports.Logger
}

var _ ports.CallJournal = (*Memory)(nil)

func NewMemory(capacity int, logger ports.Logger) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{records: make([]domain.CallRecord, capacity), logger: logger}
}

func (m *Memory) Notify(rec domain.CallRecord) { notify(m, m.logger, rec) }

func (m *Memory) Append(rec domain.CallRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[m.next] = rec
	m.next = (m.next + 1) % len(m.records)
	if m.next == 0 {
		m.full = true
	}
	return nil
}

func (m *Memory) Get(id string) (domain.CallRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := 0; i < m.size(); i++ {
		if rec := m.at(i); rec.ID.String() == id {
			return rec, nil
		}
	}
	return domain.CallRecord{}, ErrNotFound
}

func (m *Memory) Recent(limit int) ([]domain.CallRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := m.size()
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.CallRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, m.at(i))
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) size() int {
	if m.full {
		return len(m.records)
	}
	return m.next
}

// at devuelve el i-ésimo registro empezando por el más reciente.
func (m *Memory) at(i int) domain.CallRecord {
	idx := (m.next - 1 - i + len(m.records)) % len(m.records)
	return m.records[idx]
}
