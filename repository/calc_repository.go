package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is one stored calculation: the raw input and the
// result it produced, tagged with the operation kind.
type CalculationRecord struct {
	ID         uuid.UUID       `json:"id"`
	Kind       string          `json:"kind"`
	Input      json.RawMessage `json:"input"`
	Result     json.RawMessage `json:"result"`
	ComputedAt time.Time       `json:"computedAt"`
}

// CalculationRepository stores completed calculations. Saving is best
// effort for callers: a failed save never fails the calculation.
type CalculationRepository interface {
	Save(kind string, input, result any) error
}

// CalculationRepositoryMemory is an in-memory CalculationRepository.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	records []CalculationRecord
}

// NewCalculationRepositoryMemory creates an empty in-memory repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		records: []CalculationRecord{},
	}
}

// Save marshals and appends the record.
func (r *CalculationRepositoryMemory) Save(kind string, input, result any) error {
	in, err := json.Marshal(input)
	if err != nil {
		return err
	}
	out, err := json.Marshal(result)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, CalculationRecord{
		ID:         uuid.New(),
		Kind:       kind,
		Input:      in,
		Result:     out,
		ComputedAt: time.Now().UTC(),
	})
	return nil
}

// Len reports how many records have been stored.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
