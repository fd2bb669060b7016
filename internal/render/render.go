// Package render turns scored rounds and settlement lines into plain text
// for scorekeepers. Amounts are integer cents formatted for en-US.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/golfwager/internal/calculator"
	"github.com/mmynk/golfwager/internal/models"
)

const (
	// AllSquare is the settlement text when nobody owes anything.
	AllSquare = "All square"
	// PointsOnly is the settlement text for games without a money rate.
	PointsOnly = "Points only, nothing to settle"

	inProgress = "in progress"
)

// Renderer formats results with a locale-aware printer.
type Renderer struct {
	p *message.Printer
}

// New returns a Renderer for American English.
func New() *Renderer {
	return &Renderer{p: message.NewPrinter(language.AmericanEnglish)}
}

// Money formats cents as dollars with thousands separators, e.g. $1,234.05.
func (r *Renderer) Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + r.p.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}

// Settlement renders one line per payment, e.g. "Alice pays Bob $5.00".
func (r *Renderer) Settlement(round *models.Round, lines []models.SettlementLine) string {
	if len(lines) == 0 {
		return AllSquare
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, fmt.Sprintf("%s pays %s %s",
			round.PlayerName(l.FromPlayerID), round.PlayerName(l.ToPlayerID), r.Money(l.AmountCents)))
	}
	return strings.Join(out, "\n")
}

// Scoreboard renders the hole-by-hole view and standings for res.
func (r *Renderer) Scoreboard(round *models.Round, res calculator.Result) string {
	var b strings.Builder
	switch {
	case res.Skins != nil:
		r.skins(&b, round, res.Skins)
	case res.Wolf != nil:
		r.wolf(&b, round, res.Wolf)
	case res.BBB != nil:
		r.bbb(&b, round, res.BBB)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) skins(b *strings.Builder, round *models.Round, res *calculator.SkinsResult) {
	for _, h := range res.Holes {
		switch {
		case !h.Decided:
			fmt.Fprintf(b, "Hole %d: %s\n", h.Hole, inProgress)
		case h.Winner != "":
			fmt.Fprintf(b, "Hole %d: %s wins %s\n", h.Hole, round.PlayerName(h.Winner), plural(h.Skins, "skin"))
		default:
			fmt.Fprintf(b, "Hole %d: tied, %s carrying\n", h.Hole, plural(h.Carry+1, "skin"))
		}
	}
	b.WriteString("\n")
	for _, p := range round.Players {
		fmt.Fprintf(b, "%s: %s\n", p.Name, plural(res.SkinsWon[p.ID], "skin"))
	}
	if res.CarryToNext > 0 {
		fmt.Fprintf(b, "Unclaimed: %s\n", plural(res.CarryToNext, "skin"))
	}
}

func (r *Renderer) wolf(b *strings.Builder, round *models.Round, res *calculator.WolfResult) {
	for _, h := range res.Holes {
		side := "alone"
		if !h.Lone() {
			side = "with " + round.PlayerName(h.Partner)
		}
		fmt.Fprintf(b, "Hole %d (wolf %s, %s): ", h.Hole, round.PlayerName(h.Wolf), side)

		switch h.Status {
		case calculator.WolfIncomplete:
			b.WriteString(inProgress + "\n")
			continue
		case calculator.WolfTie:
			b.WriteString("halved\n")
			continue
		case calculator.WolfWin:
			b.WriteString("wolf wins")
		case calculator.WolfLose:
			b.WriteString("wolf loses")
		}
		for _, p := range round.Players {
			if d, ok := h.Deltas[p.ID]; ok {
				fmt.Fprintf(b, ", %s %s", p.Name, signed(d))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, p := range round.Players {
		fmt.Fprintf(b, "%s: %s\n", p.Name, plural(res.Points[p.ID], "point"))
	}
}

func (r *Renderer) bbb(b *strings.Builder, round *models.Round, res *calculator.BBBResult) {
	name := func(id string) string {
		if id == "" {
			return "nobody"
		}
		return round.PlayerName(id)
	}
	for _, h := range res.Holes {
		if !h.Entered {
			fmt.Fprintf(b, "Hole %d: %s\n", h.Hole, inProgress)
			continue
		}
		fmt.Fprintf(b, "Hole %d: bingo %s, bango %s, bongo %s\n",
			h.Hole, name(h.Awards.Bingo), name(h.Awards.Bango), name(h.Awards.Bongo))
	}
	fmt.Fprintf(b, "\nThrough %d\n", res.Through)
	for _, p := range round.Players {
		fmt.Fprintf(b, "%s: %s\n", p.Name, plural(res.Points[p.ID], "point"))
	}
}

func plural(n int, unit string) string {
	if n == 1 || n == -1 {
		return strconv.Itoa(n) + " " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
