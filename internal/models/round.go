package models

// HolesPerRound is the number of holes every game is scored over.
const HolesPerRound = 18

// Player is one golfer in a round.
type Player struct {
	// ID is opaque to the engines; it only has to be unique within the round.
	ID string

	// Name is the display name used when rendering results.
	Name string
}

// Round is a snapshot of one side game in progress.
// Engines are re-run against the whole snapshot after every change.
type Round struct {
	// ID is the unique identifier for the round (UUID format).
	ID string

	// Name is a human-readable label (e.g., "Saturday skins").
	Name string

	// Players in playing order. Wolf rotation follows this order.
	Players []Player

	// Game holds the variant-specific settings and raw hole entries.
	Game Game

	// Locked is set once the round is finalized. Engines ignore it.
	Locked bool

	// OwnerID is the scorekeeper who created the round.
	OwnerID string

	// CreatedAt is the Unix timestamp when the round was created.
	CreatedAt int64
}

// PlayerIDs returns the player ids in playing order.
func (r *Round) PlayerIDs() []string {
	ids := make([]string, len(r.Players))
	for i, p := range r.Players {
		ids[i] = p.ID
	}
	return ids
}

// HasPlayer reports whether id belongs to the round.
func (r *Round) HasPlayer(id string) bool {
	for _, p := range r.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// PlayerName returns the display name for id, falling back to the id itself.
func (r *Round) PlayerName(id string) string {
	for _, p := range r.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// Scorecard holds strokes keyed by hole number (1-18) then player id.
// A missing entry means the stroke has not been entered yet.
type Scorecard map[int]map[string]int

// Stroke returns the strokes entered for player on hole.
func (s Scorecard) Stroke(hole int, playerID string) (int, bool) {
	byPlayer, ok := s[hole]
	if !ok {
		return 0, false
	}
	n, ok := byPlayer[playerID]
	return n, ok
}

// Set records strokes for player on hole.
func (s Scorecard) Set(hole int, playerID string, strokes int) {
	if s[hole] == nil {
		s[hole] = make(map[string]int)
	}
	s[hole][playerID] = strokes
}

// Clone returns a deep copy of the scorecard.
func (s Scorecard) Clone() Scorecard {
	out := make(Scorecard, len(s))
	for hole, byPlayer := range s {
		cp := make(map[string]int, len(byPlayer))
		for id, n := range byPlayer {
			cp[id] = n
		}
		out[hole] = cp
	}
	return out
}
