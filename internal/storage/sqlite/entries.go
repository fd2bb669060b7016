package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/mmynk/golfwager/internal/models"
)

// insertEntries writes the raw hole entries for whichever game the round plays.
func insertEntries(ctx context.Context, tx *sql.Tx, roundID string, game models.Game) error {
	switch g := game.(type) {
	case *models.SkinsGame:
		return insertStrokes(ctx, tx, roundID, g.Strokes)
	case *models.WolfGame:
		if err := insertStrokes(ctx, tx, roundID, g.Strokes); err != nil {
			return err
		}
		for _, hole := range sortedHoles(g.Partners) {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO wolf_partners (round_id, hole, partner_id) VALUES (?, ?, ?)",
				roundID, hole, g.Partners[hole],
			)
			if err != nil {
				return fmt.Errorf("failed to insert wolf partner: %w", err)
			}
		}
	case *models.BBBGame:
		for _, hole := range sortedHoles(g.Awards) {
			a := g.Awards[hole]
			_, err := tx.ExecContext(ctx,
				"INSERT INTO hole_awards (round_id, hole, bingo, bango, bongo) VALUES (?, ?, ?, ?, ?)",
				roundID, hole, nullable(a.Bingo), nullable(a.Bango), nullable(a.Bongo),
			)
			if err != nil {
				return fmt.Errorf("failed to insert hole awards: %w", err)
			}
		}
	}
	return nil
}

func insertStrokes(ctx context.Context, tx *sql.Tx, roundID string, card models.Scorecard) error {
	for _, hole := range sortedHoles(card) {
		for playerID, n := range card[hole] {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO strokes (round_id, hole, player_id, strokes) VALUES (?, ?, ?, ?)",
				roundID, hole, playerID, n,
			)
			if err != nil {
				return fmt.Errorf("failed to insert strokes: %w", err)
			}
		}
	}
	return nil
}

// loadEntries fills game with the entries stored for roundID.
func loadEntries(ctx context.Context, q querier, roundID string, game models.Game) error {
	switch g := game.(type) {
	case *models.SkinsGame:
		return loadStrokes(ctx, q, roundID, g.Strokes)
	case *models.WolfGame:
		if err := loadStrokes(ctx, q, roundID, g.Strokes); err != nil {
			return err
		}
		return loadPartners(ctx, q, roundID, g.Partners)
	case *models.BBBGame:
		return loadAwards(ctx, q, roundID, g.Awards)
	}
	return nil
}

func loadStrokes(ctx context.Context, q querier, roundID string, card models.Scorecard) error {
	rows, err := q.QueryContext(ctx,
		"SELECT hole, player_id, strokes FROM strokes WHERE round_id = ?",
		roundID,
	)
	if err != nil {
		return fmt.Errorf("failed to get strokes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hole, n int
		var playerID string
		if err := rows.Scan(&hole, &playerID, &n); err != nil {
			return fmt.Errorf("failed to scan strokes: %w", err)
		}
		card.Set(hole, playerID, n)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate strokes: %w", err)
	}
	return nil
}

func loadPartners(ctx context.Context, q querier, roundID string, partners map[int]string) error {
	rows, err := q.QueryContext(ctx,
		"SELECT hole, partner_id FROM wolf_partners WHERE round_id = ?",
		roundID,
	)
	if err != nil {
		return fmt.Errorf("failed to get wolf partners: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hole int
		var partner string
		if err := rows.Scan(&hole, &partner); err != nil {
			return fmt.Errorf("failed to scan wolf partner: %w", err)
		}
		partners[hole] = partner
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate wolf partners: %w", err)
	}
	return nil
}

func loadAwards(ctx context.Context, q querier, roundID string, awards map[int]models.HoleAwards) error {
	rows, err := q.QueryContext(ctx,
		"SELECT hole, bingo, bango, bongo FROM hole_awards WHERE round_id = ?",
		roundID,
	)
	if err != nil {
		return fmt.Errorf("failed to get hole awards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hole int
		var bingo, bango, bongo sql.NullString
		if err := rows.Scan(&hole, &bingo, &bango, &bongo); err != nil {
			return fmt.Errorf("failed to scan hole awards: %w", err)
		}
		awards[hole] = models.HoleAwards{Bingo: bingo.String, Bango: bango.String, Bongo: bongo.String}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate hole awards: %w", err)
	}
	return nil
}

// nullable stores "no winner" as NULL.
func nullable(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}

func sortedHoles[V any](m map[int]V) []int {
	holes := make([]int, 0, len(m))
	for hole := range m {
		holes = append(holes, hole)
	}
	sort.Ints(holes)
	return holes
}
