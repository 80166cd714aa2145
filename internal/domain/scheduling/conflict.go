package scheduling

const (
	ConflictTypeLocation = "location_conflict"
	ConflictTypeOfficial = "official_conflict"
)

// Conflict describes one reason a game or assignment would double-book a
// venue or a person. Conflicts are advisory; they carry enough context to
// explain themselves but never block by force.
type Conflict struct {
	Type         string
	Message      string
	GameID       string
	AssignmentID string
}

// Messages flattens conflicts for result payloads.
func Messages(conflicts []Conflict) []string {
	if len(conflicts) == 0 {
		return nil
	}
	out := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, c.Message)
	}
	return out
}
