package calculator

import (
	"fmt"

	"github.com/mmynk/golfwager/internal/models"
)

// SkinsBalances turns skins outcomes into net balances: per skin, the winner
// collects the stake from every opponent.
func SkinsBalances(playerIDs []string, stakeCents int64, result SkinsResult) NetBalances {
	net := zeroBalances(playerIDs)
	opponents := int64(len(playerIDs) - 1)
	for _, h := range result.Holes {
		if !h.Decided || h.Winner == "" {
			continue
		}
		won := stakeCents * int64(h.Skins)
		for _, id := range playerIDs {
			if id == h.Winner {
				net[id] += won * opponents
			} else {
				net[id] -= won
			}
		}
	}
	return net
}

// WolfBalances turns wolf points into net balances at centsPerPoint.
// ok is false when no rate is configured and settlement should be skipped.
//
// Team holes already sum to zero. A lone hole's counterweight is spread over
// the three opponents exactly (in 1/(n-1) cents) and rounded once at the end.
//
// How a lone hole should settle is still open with the product owners. The
// split above is the interim rule; change it here and in wolf.go's Absorbed
// accounting together once they decide.
func WolfBalances(playerIDs []string, centsPerPoint int64, result WolfResult) (NetBalances, bool) {
	if centsPerPoint <= 0 || len(playerIDs) < 2 {
		return nil, false
	}
	divisor := int64(len(playerIDs) - 1)

	scaled := make(map[string]int64, len(playerIDs))
	for _, id := range playerIDs {
		scaled[id] = int64(result.Points[id]) * centsPerPoint * divisor
	}
	for _, h := range result.Holes {
		if !h.Lone() || h.Absorbed == 0 {
			continue
		}
		for _, id := range h.Opponents(playerIDs) {
			scaled[id] += int64(h.Absorbed) * centsPerPoint
		}
	}

	return reconcileCents(playerIDs, scaled, divisor), true
}

// BBBBalances turns additive BBB points into zero-sum balances: every point
// costs each opponent one share, so net = rate * (points*n - total).
// ok is false when no rate is configured.
func BBBBalances(playerIDs []string, centsPerPoint int64, result BBBResult) (NetBalances, bool) {
	if centsPerPoint <= 0 {
		return nil, false
	}
	n := int64(len(playerIDs))
	var total int64
	for _, id := range playerIDs {
		total += int64(result.Points[id])
	}

	net := make(NetBalances, len(playerIDs))
	for _, id := range playerIDs {
		net[id] = centsPerPoint * (int64(result.Points[id])*n - total)
	}
	return net, true
}

// Result is the scored view of a round. Exactly one field is set, matching
// the round's variant.
type Result struct {
	Skins *SkinsResult
	Wolf  *WolfResult
	BBB   *BBBResult
}

// Compute runs the engine for the round's variant.
func Compute(r *models.Round) (Result, error) {
	ids := r.PlayerIDs()
	switch g := r.Game.(type) {
	case *models.SkinsGame:
		res := ComputeSkins(ids, g.Strokes)
		return Result{Skins: &res}, nil
	case *models.WolfGame:
		res := ComputeWolf(ids, g)
		return Result{Wolf: &res}, nil
	case *models.BBBGame:
		res := ComputeBBB(ids, g.Awards)
		return Result{BBB: &res}, nil
	default:
		return Result{}, fmt.Errorf("%w: %T", models.ErrUnknownVariant, r.Game)
	}
}

// Settlement is what a round owes, ready to render.
type Settlement struct {
	Balances NetBalances
	Lines    []models.SettlementLine

	// Skipped is set when the game has no money configured.
	Skipped bool
}

// SettleRound scores the round and nets the resulting balances.
func SettleRound(r *models.Round) (*Settlement, error) {
	res, err := Compute(r)
	if err != nil {
		return nil, err
	}

	ids := r.PlayerIDs()
	var balances NetBalances
	ok := true
	switch g := r.Game.(type) {
	case *models.SkinsGame:
		balances = SkinsBalances(ids, g.StakeCents, *res.Skins)
	case *models.WolfGame:
		balances, ok = WolfBalances(ids, g.CentsPerPoint, *res.Wolf)
	case *models.BBBGame:
		balances, ok = BBBBalances(ids, g.CentsPerPoint, *res.BBB)
	}
	if !ok {
		return &Settlement{Skipped: true}, nil
	}

	lines, err := Net(ids, balances)
	if err != nil {
		return nil, fmt.Errorf("failed to net balances: %w", err)
	}
	return &Settlement{Balances: balances, Lines: lines}, nil
}

func zeroBalances(playerIDs []string) NetBalances {
	net := make(NetBalances, len(playerIDs))
	for _, id := range playerIDs {
		net[id] = 0
	}
	return net
}
