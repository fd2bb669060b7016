package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRound      = errors.New("invalid round")
	ErrUnknownVariant    = fmt.Errorf("%w: unknown game variant", ErrInvalidRound)
	ErrPlayerCount       = fmt.Errorf("%w: a round needs 2 to 4 players", ErrInvalidRound)
	ErrWolfPlayerCount   = fmt.Errorf("%w: wolf needs exactly 4 players", ErrInvalidRound)
	ErrDuplicatePlayer   = fmt.Errorf("%w: duplicate player id", ErrInvalidRound)
	ErrEmptyPlayerID     = fmt.Errorf("%w: player id required", ErrInvalidRound)
	ErrStake             = fmt.Errorf("%w: stake must be positive", ErrInvalidRound)
	ErrNegativeRate      = fmt.Errorf("%w: cents per point cannot be negative", ErrInvalidRound)
	ErrWolfPoints        = fmt.Errorf("%w: points per hole and lone multiplier must be positive", ErrInvalidRound)
	ErrStartingIndex     = fmt.Errorf("%w: starting index out of range", ErrInvalidRound)
	ErrHoleOutOfRange    = fmt.Errorf("%w: hole must be between 1 and 18", ErrInvalidRound)
	ErrUnknownPlayer     = fmt.Errorf("%w: unknown player", ErrInvalidRound)
	ErrInvalidStrokes    = fmt.Errorf("%w: strokes must be positive", ErrInvalidRound)
	ErrPartnerIsWolf     = fmt.Errorf("%w: partner must differ from the wolf", ErrInvalidRound)
	ErrVariantMismatch   = fmt.Errorf("%w: operation does not apply to this game", ErrInvalidRound)
	ErrMissingGameConfig = fmt.Errorf("%w: game settings required", ErrInvalidRound)
)

// Validate checks the round setup and every raw entry already recorded.
func (r *Round) Validate() error {
	if r.Game == nil {
		return ErrMissingGameConfig
	}
	if len(r.Players) < 2 || len(r.Players) > 4 {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(r.Players))
	}
	seen := make(map[string]bool, len(r.Players))
	for _, p := range r.Players {
		if p.ID == "" {
			return ErrEmptyPlayerID
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = true
	}

	switch g := r.Game.(type) {
	case *SkinsGame:
		if g.StakeCents <= 0 {
			return ErrStake
		}
		return r.validateStrokes(g.Strokes)
	case *WolfGame:
		if len(r.Players) != 4 {
			return fmt.Errorf("%w: got %d", ErrWolfPlayerCount, len(r.Players))
		}
		if g.PointsPerHole <= 0 || g.LoneMultiplier <= 0 {
			return ErrWolfPoints
		}
		if g.StartingIndex < 0 || g.StartingIndex >= len(r.Players) {
			return fmt.Errorf("%w: %d", ErrStartingIndex, g.StartingIndex)
		}
		if g.CentsPerPoint < 0 {
			return ErrNegativeRate
		}
		for hole, partner := range g.Partners {
			if err := r.ValidatePartner(hole, partner); err != nil {
				return err
			}
		}
		return r.validateStrokes(g.Strokes)
	case *BBBGame:
		if g.CentsPerPoint < 0 {
			return ErrNegativeRate
		}
		for hole, awards := range g.Awards {
			if err := r.ValidateAwards(hole, awards); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnknownVariant
	}
}

// ValidateHole checks that hole is in 1..18.
func ValidateHole(hole int) error {
	if hole < 1 || hole > HolesPerRound {
		return fmt.Errorf("%w: %d", ErrHoleOutOfRange, hole)
	}
	return nil
}

// ValidateStrokes checks one hole's stroke entries.
func (r *Round) ValidateStrokes(hole int, strokes map[string]int) error {
	if err := ValidateHole(hole); err != nil {
		return err
	}
	for id, n := range strokes {
		if !r.HasPlayer(id) {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
		if n <= 0 {
			return fmt.Errorf("%w: %s has %d on hole %d", ErrInvalidStrokes, id, n, hole)
		}
	}
	return nil
}

// ValidatePartner checks a wolf partner pick. An empty partner is a lone wolf.
func (r *Round) ValidatePartner(hole int, partner string) error {
	if err := ValidateHole(hole); err != nil {
		return err
	}
	g, ok := r.Game.(*WolfGame)
	if !ok {
		return ErrVariantMismatch
	}
	if partner == "" {
		return nil
	}
	if !r.HasPlayer(partner) {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, partner)
	}
	if partner == WolfForHole(r.PlayerIDs(), g.StartingIndex, hole) {
		return fmt.Errorf("%w: hole %d", ErrPartnerIsWolf, hole)
	}
	return nil
}

// ValidateAwards checks that every named award winner plays in the round.
func (r *Round) ValidateAwards(hole int, awards HoleAwards) error {
	if err := ValidateHole(hole); err != nil {
		return err
	}
	for _, id := range awards.Winners() {
		if !r.HasPlayer(id) {
			return fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}
	return nil
}

func (r *Round) validateStrokes(card Scorecard) error {
	for hole, byPlayer := range card {
		if err := r.ValidateStrokes(hole, byPlayer); err != nil {
			return err
		}
	}
	return nil
}

// WolfForHole returns the wolf for hole given the player order and starting index.
func WolfForHole(playerIDs []string, startingIndex, hole int) string {
	if len(playerIDs) == 0 {
		return ""
	}
	n := len(playerIDs)
	idx := ((startingIndex+hole-1)%n + n) % n
	return playerIDs[idx]
}
