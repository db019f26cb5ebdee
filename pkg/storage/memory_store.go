package storage

import (
	"errors"
	"sync"

	"github.com/jobguard/go-jobguard/pkg/models"
)

// DefaultCapacity bounds the in-memory ring when no capacity is given.
const DefaultCapacity = 1000

// MemoryStore keeps the most recent assessments in a fixed-size ring
// buffer. Thread-safe. Intended for single-process deployments and
// tests; anything needing durability should implement AssessmentStore
// over a real backend.
type MemoryStore struct {
	mu       sync.RWMutex
	records  []*Record
	capacity int
	next     int
	full     bool
}

// NewMemoryStore creates a bounded in-memory store. Capacity values
// below 1 fall back to DefaultCapacity.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		records:  make([]*Record, capacity),
		capacity: capacity,
	}
}

// Save appends the record, evicting the oldest once the ring is full.
func (m *MemoryStore) Save(record *Record) error {
	if record == nil {
		return errors.New("storage: record must not be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[m.next] = record
	m.next++
	if m.next == m.capacity {
		m.next = 0
		m.full = true
	}
	return nil
}

// Recent returns up to limit records, newest first. A limit below 1
// returns everything stored.
func (m *MemoryStore) Recent(limit int) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := m.len()
	if limit < 1 || limit > count {
		limit = count
	}

	out := make([]*Record, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (m.next - i + m.capacity) % m.capacity
		out = append(out, m.records[idx])
	}
	return out, nil
}

// Stats aggregates all stored records.
func (m *MemoryStore) Stats() (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := &Stats{
		VerdictCounts: map[models.Verdict]int{
			models.VerdictSafe:     0,
			models.VerdictCaution:  0,
			models.VerdictHighRisk: 0,
		},
	}

	count := m.len()
	if count == 0 {
		return stats, nil
	}

	scoreSum := 0
	for i := 1; i <= count; i++ {
		idx := (m.next - i + m.capacity) % m.capacity
		r := m.records[idx]
		scoreSum += r.RiskScore
		stats.VerdictCounts[r.Verdict]++

		ts := r.Timestamp
		if stats.NewestRecord == nil || ts.After(*stats.NewestRecord) {
			t := ts
			stats.NewestRecord = &t
		}
		if stats.OldestRecord == nil || ts.Before(*stats.OldestRecord) {
			t := ts
			stats.OldestRecord = &t
		}
	}

	stats.TotalAssessments = count
	stats.AverageRiskScore = float64(scoreSum) / float64(count)
	return stats, nil
}

// len reports stored record count. Caller must hold the lock.
func (m *MemoryStore) len() int {
	if m.full {
		return m.capacity
	}
	return m.next
}
