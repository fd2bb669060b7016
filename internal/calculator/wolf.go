package calculator

import "github.com/mmynk/golfwager/internal/models"

// WolfStatus is the outcome of one wolf hole.
type WolfStatus string

const (
	WolfIncomplete WolfStatus = "incomplete"
	WolfTie        WolfStatus = "tie"
	WolfWin        WolfStatus = "wolfWin"
	WolfLose       WolfStatus = "wolfLose"
)

// WolfHole is the outcome of one hole of wolf.
type WolfHole struct {
	Hole int
	Wolf string

	// Partner is empty when the wolf went alone.
	Partner string

	Status WolfStatus

	// Deltas holds the point change per player for this hole.
	// In lone mode only the wolf's own delta is recorded.
	Deltas map[string]int

	// Absorbed is the lone-wolf counterweight: the points the other three
	// carry between them (always -Deltas[Wolf]). Zero in team mode.
	Absorbed int
}

// Lone reports whether the wolf played the hole alone.
func (h WolfHole) Lone() bool { return h.Partner == "" }

// Opponents returns the players not on the wolf's side.
func (h WolfHole) Opponents(playerIDs []string) []string {
	var out []string
	for _, id := range playerIDs {
		if id != h.Wolf && id != h.Partner {
			out = append(out, id)
		}
	}
	return out
}

// WolfResult is the full-round view of a wolf game.
type WolfResult struct {
	Points map[string]int
	Holes  []WolfHole
}

// ComputeWolf resolves 18 holes of wolf.
//
// The wolf for hole h is players[(start+h-1) mod n]. A missing or self
// partner means lone mode: the wolf wins or loses points*multiplier against
// the best of the other three. Otherwise it is best ball 2v2 for points each.
func ComputeWolf(playerIDs []string, g *models.WolfGame) WolfResult {
	result := WolfResult{
		Points: make(map[string]int, len(playerIDs)),
		Holes:  make([]WolfHole, 0, models.HolesPerRound),
	}
	for _, id := range playerIDs {
		result.Points[id] = 0
	}
	if len(playerIDs) == 0 {
		return result
	}

	members := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		members[id] = true
	}

	for hole := 1; hole <= models.HolesPerRound; hole++ {
		wolf := models.WolfForHole(playerIDs, g.StartingIndex, hole)
		partner := g.Partners[hole]
		if partner == wolf || !members[partner] {
			partner = ""
		}

		h := WolfHole{Hole: hole, Wolf: wolf, Partner: partner, Status: WolfIncomplete}
		if scores, ok := holeStrokes(playerIDs, g.Strokes, hole); ok {
			if h.Lone() {
				resolveLone(&h, playerIDs, scores, g.PointsPerHole*g.LoneMultiplier)
			} else {
				resolveTeam(&h, playerIDs, scores, g.PointsPerHole)
			}
		}

		for id, d := range h.Deltas {
			result.Points[id] += d
		}
		result.Holes = append(result.Holes, h)
	}

	return result
}

func resolveLone(h *WolfHole, playerIDs []string, scores map[string]int, stake int) {
	best := bestBall(h.Opponents(playerIDs), scores)
	switch own := scores[h.Wolf]; {
	case own < best:
		h.Status = WolfWin
		h.Deltas = map[string]int{h.Wolf: stake}
	case own > best:
		h.Status = WolfLose
		h.Deltas = map[string]int{h.Wolf: -stake}
	default:
		h.Status = WolfTie
		return
	}
	h.Absorbed = -h.Deltas[h.Wolf]
}

func resolveTeam(h *WolfHole, playerIDs []string, scores map[string]int, stake int) {
	opponents := h.Opponents(playerIDs)
	wolfBall := bestBall([]string{h.Wolf, h.Partner}, scores)
	otherBall := bestBall(opponents, scores)

	var sign int
	switch {
	case wolfBall < otherBall:
		h.Status, sign = WolfWin, 1
	case wolfBall > otherBall:
		h.Status, sign = WolfLose, -1
	default:
		h.Status = WolfTie
		return
	}

	h.Deltas = make(map[string]int, len(playerIDs))
	h.Deltas[h.Wolf] = sign * stake
	h.Deltas[h.Partner] = sign * stake
	for _, id := range opponents {
		h.Deltas[id] = -sign * stake
	}
}

// holeStrokes returns every player's strokes for hole, or false if any is missing.
func holeStrokes(playerIDs []string, strokes models.Scorecard, hole int) (map[string]int, bool) {
	out := make(map[string]int, len(playerIDs))
	for _, id := range playerIDs {
		n, ok := strokes.Stroke(hole, id)
		if !ok {
			return nil, false
		}
		out[id] = n
	}
	return out, true
}

// bestBall is the lowest score among ids.
func bestBall(ids []string, scores map[string]int) int {
	best := 0
	for i, id := range ids {
		if n := scores[id]; i == 0 || n < best {
			best = n
		}
	}
	return best
}
