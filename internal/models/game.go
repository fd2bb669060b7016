package models

import "fmt"

// Variant tags which side game a round is playing.
type Variant string

const (
	VariantSkins Variant = "skins"
	VariantWolf  Variant = "wolf"
	VariantBBB   Variant = "bbb"
)

// ParseVariant converts a wire value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSkins, VariantWolf, VariantBBB:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Game is the per-variant payload of a round.
// Implementations are *SkinsGame, *WolfGame and *BBBGame; the unexported
// method keeps the set closed.
type Game interface {
	Variant() Variant
	isGame()
}

// SkinsGame awards one skin per hole to a sole low score; ties carry.
type SkinsGame struct {
	// StakeCents is what each opponent pays the winner per skin.
	StakeCents int64

	Strokes Scorecard
}

func (*SkinsGame) Variant() Variant { return VariantSkins }
func (*SkinsGame) isGame()          {}

// WolfGame is the four-player rotating wolf game.
type WolfGame struct {
	PointsPerHole  int
	LoneMultiplier int

	// StartingIndex picks the hole 1 wolf from the player order.
	StartingIndex int

	// Partners maps hole number to the partner the wolf picked.
	// No entry (or the wolf's own id) means the wolf played alone.
	Partners map[int]string

	// CentsPerPoint is optional; zero means points are not settled for money.
	CentsPerPoint int64

	Strokes Scorecard
}

func (*WolfGame) Variant() Variant { return VariantWolf }
func (*WolfGame) isGame()          {}

// BBBGame is bingo-bango-bongo: three independent awards per hole.
type BBBGame struct {
	// CentsPerPoint is optional; zero means points are not settled for money.
	CentsPerPoint int64

	// Awards maps hole number to that hole's award record.
	// A present record counts as entered even when every slot is empty.
	Awards map[int]HoleAwards
}

func (*BBBGame) Variant() Variant { return VariantBBB }
func (*BBBGame) isGame()          {}

// HoleAwards holds the winner of each BBB award on one hole.
// An empty string means nobody won that award.
type HoleAwards struct {
	Bingo string // first on the green
	Bango string // closest to the pin once all are on
	Bongo string // first to hole out
}

// Winners returns the non-empty award winners in slot order.
func (a HoleAwards) Winners() []string {
	var out []string
	for _, id := range []string{a.Bingo, a.Bango, a.Bongo} {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
