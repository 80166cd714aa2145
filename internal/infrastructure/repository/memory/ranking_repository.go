package memory

import (
	"context"
	"sync"

	"github.com/openrefs/refsched/internal/domain/ranking"
)

type RankingRepository struct {
	mu    sync.RWMutex
	items map[string]ranking.Record
}

func NewRankingRepository(records []ranking.Record) *RankingRepository {
	items := make(map[string]ranking.Record, len(records))
	for _, record := range records {
		items[record.OfficialID+"\x00"+record.LeagueID] = record
	}
	return &RankingRepository{items: items}
}

func (r *RankingRepository) GetActive(_ context.Context, officialID, leagueID string) (ranking.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[officialID+"\x00"+leagueID]
	if !ok || !record.IsActive {
		return ranking.Record{}, false, nil
	}
	return record, true, nil
}
