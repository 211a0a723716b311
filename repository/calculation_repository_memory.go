package repository

import (
	"context"
	"sync"
	"time"

	"calc-suite/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. It keeps at most capacity entries in a ring,
// overwriting the oldest first.
type CalculationRepositoryMemory struct {
	mu       sync.Mutex
	data     []domain.Calculation
	head     int // oldest entry once the ring is full
	nextID   int64
	capacity int
}

const DefaultMemoryCapacity = 10_000

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &CalculationRepositoryMemory{
		data:     make([]domain.Calculation, 0, min(capacity, 256)),
		capacity: capacity,
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(_ context.Context, calc domain.Calculation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	calc.ID = r.nextID
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now().UTC()
	}
	if len(r.data) < r.capacity {
		r.data = append(r.data, calc)
		return nil
	}
	r.data[r.head] = calc
	r.head = (r.head + 1) % r.capacity
	return nil
}

func (r *CalculationRepositoryMemory) Recent(_ context.Context, tool domain.Tool, limit int) ([]domain.Calculation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit = normalizeLimit(limit)
	out := []domain.Calculation{}
	n := len(r.data)
	for i := 0; i < n && len(out) < limit; i++ {
		calc := r.data[(r.head-1-i+2*n)%n]
		if calc.Tool == tool {
			out = append(out, calc)
		}
	}
	return out, nil
}
