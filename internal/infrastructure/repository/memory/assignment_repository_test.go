package memory

import (
	"testing"
	"time"

	"github.com/openrefs/refsched/internal/domain/assignment"
)

func TestAssignmentRepository_UpsertReactivatesRemovedPair(t *testing.T) {
	repo := NewAssignmentRepository(nil)
	assignedAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	original := assignment.Assignment{
		ID:         "as-001",
		GameID:     "gm-1",
		OfficialID: "off-alice",
		Position:   "Referee 1",
		Type:       assignment.TypeAuto,
		Status:     assignment.StatusAssigned,
		IsActive:   true,
		AssignedAt: assignedAt,
	}
	if _, err := repo.Upsert(t.Context(), original); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if err := repo.Deactivate(t.Context(), "gm-1", "off-alice"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, found, _ := repo.GetActive(t.Context(), "gm-1", "off-alice"); found {
		t.Fatal("deactivated pair should not be active")
	}

	replacement := original
	replacement.ID = "as-002"
	replacement.Position = "Referee 2"
	replacement.AssignedAt = assignedAt.Add(24 * time.Hour)

	stored, err := repo.Upsert(t.Context(), replacement)
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	// The historical row comes back to life instead of a duplicate.
	if stored.ID != "as-001" {
		t.Fatalf("stored ID = %s, want original as-001", stored.ID)
	}
	if !stored.IsActive || stored.Position != "Referee 2" {
		t.Fatalf("stored = %+v, want active with updated position", stored)
	}

	active, err := repo.ListActiveByGame(t.Context(), "gm-1")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active rows = %d, want exactly 1", len(active))
	}
}

func TestAssignmentRepository_CountActiveByOfficialSince(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	repo := NewAssignmentRepository([]assignment.Assignment{
		{ID: "as-1", GameID: "gm-1", OfficialID: "off-alice", IsActive: true, AssignedAt: now.AddDate(0, 0, -5)},
		{ID: "as-2", GameID: "gm-2", OfficialID: "off-alice", IsActive: true, AssignedAt: now.AddDate(0, 0, -45)},
		{ID: "as-3", GameID: "gm-3", OfficialID: "off-alice", IsActive: false, AssignedAt: now.AddDate(0, 0, -1)},
	})

	count, err := repo.CountActiveByOfficialSince(t.Context(), "off-alice", now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1 (old and inactive rows excluded)", count)
	}
}
