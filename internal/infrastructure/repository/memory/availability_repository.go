package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openrefs/refsched/internal/domain/availability"
)

type AvailabilityRepository struct {
	mu      sync.RWMutex
	records map[string][]availability.Record
}

func NewAvailabilityRepository(records []availability.Record) *AvailabilityRepository {
	byOfficial := make(map[string][]availability.Record)
	for _, record := range records {
		byOfficial[record.OfficialID] = append(byOfficial[record.OfficialID], record)
	}
	return &AvailabilityRepository{records: byOfficial}
}

func (r *AvailabilityRepository) ListActiveCovering(_ context.Context, officialID string, date time.Time) ([]availability.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]availability.Record, 0)
	for _, record := range r.records[officialID] {
		if !record.IsActive {
			continue
		}
		if !record.Covers(date) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}
