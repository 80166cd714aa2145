package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := Select("*").From("games").
		Where(
			Eq("location_id", "loc-1"),
			Neq("id", "g-1"),
			Gte("starts_at", date),
			NotIn("status", []any{"cancelled", "completed"}),
			IsNull("deleted_at"),
		).
		OrderBy("starts_at", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM games WHERE location_id = $1 AND id <> $2 AND starts_at >= $3 AND status NOT IN ($4, $5) AND deleted_at IS NULL ORDER BY starts_at, id LIMIT 10"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	wantArgs := []any{"loc-1", "g-1", date, "cancelled", "completed"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args mismatch: got %v want %v", args, wantArgs)
	}
}

func TestSelectRequiresTable(t *testing.T) {
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInCollapsesEmptyList(t *testing.T) {
	query, args, err := Select("id").From("games").Where(In("status", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT id FROM games WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestInsertBuilderWithSuffix(t *testing.T) {
	query, args, err := InsertInto("assignments").
		Columns("game_id", "official_id").
		Values("g-1", "o-1").
		Suffix("ON CONFLICT (game_id, official_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO assignments (game_id, official_id) VALUES ($1, $2) ON CONFLICT (game_id, official_id) DO NOTHING"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"g-1", "o-1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("assignments").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(Eq("game_id", "g-1"), Eq("official_id", "o-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE assignments SET is_active = $1, updated_at = NOW() WHERE game_id = $2 AND official_id = $3"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{false, "g-1", "o-1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		GameID     string `db:"game_id"`
		OfficialID string `db:"official_id"`
		Skipped    string `db:"-"`
		unexported string
	}

	query, args, err := InsertModel("assignments", row{GameID: "g-1", OfficialID: "o-1", Skipped: "x", unexported: "y"}, "")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}

	want := "INSERT INTO assignments (game_id, official_id) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"g-1", "o-1"}) {
		t.Fatalf("args mismatch: %v", args)
	}
}
