package service

import (
	"github.com/mmynk/golfwager/internal/calculator"
	"github.com/mmynk/golfwager/internal/config"
	"github.com/mmynk/golfwager/internal/models"
	"github.com/mmynk/golfwager/pkg/api"
)

func playersFromAPI(in []api.Player) []models.Player {
	out := make([]models.Player, len(in))
	for i, p := range in {
		out[i] = models.Player{ID: p.ID, Name: p.Name}
	}
	return out
}

// gameFromAPI builds an empty game for the requested variant. It starts from
// the presets and overwrites every setting the caller sent, zero included.
func gameFromAPI(gs api.GameSettings, presets config.Presets) (models.Game, error) {
	variant, err := models.ParseVariant(gs.Variant)
	if err != nil {
		return nil, err
	}
	game, err := presets.NewGame(variant)
	if err != nil {
		return nil, err
	}
	switch g := game.(type) {
	case *models.SkinsGame:
		if gs.Skins != nil {
			setIfSent(&g.StakeCents, gs.Skins.StakeCents)
		}
	case *models.WolfGame:
		if gs.Wolf != nil {
			setIfSent(&g.PointsPerHole, gs.Wolf.PointsPerHole)
			setIfSent(&g.LoneMultiplier, gs.Wolf.LoneMultiplier)
			setIfSent(&g.CentsPerPoint, gs.Wolf.CentsPerPoint)
			g.StartingIndex = gs.Wolf.StartingIndex
		}
	case *models.BBBGame:
		if gs.BBB != nil {
			setIfSent(&g.CentsPerPoint, gs.BBB.CentsPerPoint)
		}
	}
	return game, nil
}

func setIfSent[T any](dst *T, sent *T) {
	if sent != nil {
		*dst = *sent
	}
}

func ptr[T any](v T) *T { return &v }

func settingsToAPI(game models.Game) api.GameSettings {
	switch g := game.(type) {
	case *models.SkinsGame:
		return api.GameSettings{
			Variant: string(models.VariantSkins),
			Skins:   &api.SkinsSettings{StakeCents: ptr(g.StakeCents)},
		}
	case *models.WolfGame:
		return api.GameSettings{
			Variant: string(models.VariantWolf),
			Wolf: &api.WolfSettings{
				PointsPerHole:  ptr(g.PointsPerHole),
				LoneMultiplier: ptr(g.LoneMultiplier),
				StartingIndex:  g.StartingIndex,
				CentsPerPoint:  ptr(g.CentsPerPoint),
			},
		}
	case *models.BBBGame:
		return api.GameSettings{
			Variant: string(models.VariantBBB),
			BBB:     &api.BBBSettings{CentsPerPoint: ptr(g.CentsPerPoint)},
		}
	}
	return api.GameSettings{}
}

// holesToAPI lists every hole with at least one raw entry.
func holesToAPI(game models.Game) []api.HoleEntry {
	var out []api.HoleEntry
	for hole := 1; hole <= models.HolesPerRound; hole++ {
		e := api.HoleEntry{Hole: hole}
		switch g := game.(type) {
		case *models.SkinsGame:
			e.Strokes = g.Strokes[hole]
		case *models.WolfGame:
			e.Strokes = g.Strokes[hole]
			e.PartnerID = g.Partners[hole]
		case *models.BBBGame:
			if a, ok := g.Awards[hole]; ok {
				e.Awards = awardsToAPI(a)
			}
		}
		if len(e.Strokes) > 0 || e.PartnerID != "" || e.Awards != nil {
			out = append(out, e)
		}
	}
	return out
}

func awardsToAPI(a models.HoleAwards) *api.Awards {
	return &api.Awards{Bingo: a.Bingo, Bango: a.Bango, Bongo: a.Bongo}
}

func roundToAPI(r *models.Round) *api.Round {
	players := make([]api.Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = api.Player{ID: p.ID, Name: p.Name}
	}
	return &api.Round{
		ID:        r.ID,
		Name:      r.Name,
		Players:   players,
		Game:      settingsToAPI(r.Game),
		Holes:     holesToAPI(r.Game),
		Locked:    r.Locked,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
	}
}

func summaryToAPI(r *models.Round) api.RoundSummary {
	return api.RoundSummary{
		ID:          r.ID,
		Name:        r.Name,
		Variant:     string(r.Game.Variant()),
		PlayerCount: len(r.Players),
		Locked:      r.Locked,
		CreatedAt:   r.CreatedAt,
	}
}

// scoreboardToAPI flattens an engine result into hole rows and standings.
func scoreboardToAPI(r *models.Round, res calculator.Result) *api.Scoreboard {
	sb := &api.Scoreboard{Variant: string(r.Game.Variant())}

	switch {
	case res.Skins != nil:
		for _, h := range res.Skins.Holes {
			sb.Holes = append(sb.Holes, api.HoleResult{
				Hole:    h.Hole,
				Decided: h.Decided,
				Carry:   h.Carry,
				Winner:  h.Winner,
				Skins:   h.Skins,
			})
		}
		for _, p := range r.Players {
			sb.Standings = append(sb.Standings, api.Standing{PlayerID: p.ID, Name: p.Name, Skins: res.Skins.SkinsWon[p.ID]})
		}
		sb.CarryToNext = res.Skins.CarryToNext

	case res.Wolf != nil:
		for _, h := range res.Wolf.Holes {
			sb.Holes = append(sb.Holes, api.HoleResult{
				Hole:     h.Hole,
				Decided:  h.Status != calculator.WolfIncomplete,
				Wolf:     h.Wolf,
				Partner:  h.Partner,
				Status:   string(h.Status),
				Deltas:   h.Deltas,
				Absorbed: h.Absorbed,
			})
		}
		for _, p := range r.Players {
			sb.Standings = append(sb.Standings, api.Standing{PlayerID: p.ID, Name: p.Name, Points: res.Wolf.Points[p.ID]})
		}

	case res.BBB != nil:
		for _, h := range res.BBB.Holes {
			row := api.HoleResult{Hole: h.Hole, Decided: h.Entered}
			if h.Entered {
				row.Awards = awardsToAPI(h.Awards)
			}
			sb.Holes = append(sb.Holes, row)
		}
		for _, p := range r.Players {
			sb.Standings = append(sb.Standings, api.Standing{PlayerID: p.ID, Name: p.Name, Points: res.BBB.Points[p.ID]})
		}
		sb.Through = res.BBB.Through
	}
	return sb
}

func linesToAPI(lines []models.SettlementLine) []api.SettlementLine {
	out := make([]api.SettlementLine, len(lines))
	for i, l := range lines {
		out[i] = api.SettlementLine{FromPlayerID: l.FromPlayerID, ToPlayerID: l.ToPlayerID, AmountCents: l.AmountCents}
	}
	return out
}

func balancesToAPI(r *models.Round, net calculator.NetBalances) []api.Balance {
	if net == nil {
		return nil
	}
	out := make([]api.Balance, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, api.Balance{PlayerID: p.ID, NetCents: net[p.ID]})
	}
	return out
}

func userToAPI(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}
