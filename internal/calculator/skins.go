package calculator

import "github.com/mmynk/golfwager/internal/models"

// SkinsHole is the outcome of one hole of skins.
type SkinsHole struct {
	Hole int

	// Carry is the number of skins carried into this hole.
	Carry int

	// Decided is false until every player has a stroke on the hole.
	Decided bool

	// Winner is the sole low score; empty on a tie or when undecided.
	Winner string

	// Skins is what the winner collected, including the carry.
	Skins int
}

// SkinsResult is the full-round view of a skins game.
type SkinsResult struct {
	Holes    []SkinsHole
	SkinsWon map[string]int

	// CarryToNext is what was still carrying after hole 18. It is never paid out.
	CarryToNext int
}

// ComputeSkins resolves 18 holes of strokes.
//
// The carry is a local accumulator: an undecided hole leaves it alone, a tie
// adds one, and a sole low score takes 1+carry and resets it.
func ComputeSkins(playerIDs []string, strokes models.Scorecard) SkinsResult {
	result := SkinsResult{
		Holes:    make([]SkinsHole, 0, models.HolesPerRound),
		SkinsWon: make(map[string]int, len(playerIDs)),
	}
	for _, id := range playerIDs {
		result.SkinsWon[id] = 0
	}

	carry := 0
	for hole := 1; hole <= models.HolesPerRound; hole++ {
		low, ok := lowScorers(playerIDs, strokes, hole)
		if !ok {
			result.Holes = append(result.Holes, SkinsHole{Hole: hole, Carry: carry})
			continue
		}

		if len(low) == 1 {
			won := 1 + carry
			result.Holes = append(result.Holes, SkinsHole{
				Hole:    hole,
				Carry:   carry,
				Decided: true,
				Winner:  low[0],
				Skins:   won,
			})
			result.SkinsWon[low[0]] += won
			carry = 0
			continue
		}

		result.Holes = append(result.Holes, SkinsHole{Hole: hole, Carry: carry, Decided: true})
		carry++
	}

	result.CarryToNext = carry
	return result
}

// lowScorers returns every player tied for the lowest stroke on hole.
// ok is false when any player's stroke is missing.
func lowScorers(playerIDs []string, strokes models.Scorecard, hole int) (low []string, ok bool) {
	if len(playerIDs) == 0 {
		return nil, false
	}
	best := 0
	for i, id := range playerIDs {
		n, entered := strokes.Stroke(hole, id)
		if !entered {
			return nil, false
		}
		switch {
		case i == 0 || n < best:
			best = n
			low = append(low[:0], id)
		case n == best:
			low = append(low, id)
		}
	}
	return low, true
}
