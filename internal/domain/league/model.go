package league

// League groups games and per-league official rankings.
type League struct {
	ID       string
	Name     string
	Sport    string
	IsActive bool
}
