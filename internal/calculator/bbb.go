package calculator

import "github.com/mmynk/golfwager/internal/models"

// BBBHole is one hole of bingo-bango-bongo as entered.
type BBBHole struct {
	Hole    int
	Entered bool
	Awards  models.HoleAwards
}

// BBBResult is the full-round view of a bingo-bango-bongo game.
type BBBResult struct {
	// Through is the last hole of the unbroken run of entered holes from hole 1.
	Through int

	Points map[string]int
	Holes  []BBBHole
}

// ComputeBBB totals one point per award won. Points are additive, not zero-sum.
func ComputeBBB(playerIDs []string, awards map[int]models.HoleAwards) BBBResult {
	result := BBBResult{
		Points: make(map[string]int, len(playerIDs)),
		Holes:  make([]BBBHole, 0, models.HolesPerRound),
	}
	for _, id := range playerIDs {
		result.Points[id] = 0
	}

	contiguous := true
	for hole := 1; hole <= models.HolesPerRound; hole++ {
		a, entered := awards[hole]
		result.Holes = append(result.Holes, BBBHole{Hole: hole, Entered: entered, Awards: a})

		if !entered {
			contiguous = false
			continue
		}
		if contiguous {
			result.Through = hole
		}
		for _, id := range a.Winners() {
			if _, ok := result.Points[id]; ok {
				result.Points[id]++
			}
		}
	}

	return result
}
