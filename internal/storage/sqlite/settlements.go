package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/golfwager/internal/models"
)

func replaceSettlementLines(ctx context.Context, tx *sql.Tx, roundID string, lines []models.SettlementLine) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM settlement_lines WHERE round_id = ?", roundID); err != nil {
		return fmt.Errorf("failed to clear settlement lines: %w", err)
	}
	for i, l := range lines {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settlement_lines (round_id, position, from_player_id, to_player_id, amount_cents)
			 VALUES (?, ?, ?, ?, ?)`,
			roundID, i, l.FromPlayerID, l.ToPlayerID, l.AmountCents,
		)
		if err != nil {
			return fmt.Errorf("failed to insert settlement line: %w", err)
		}
	}
	return nil
}

// ListSettlementLines retrieves the frozen settlement for a round.
func (s *SQLiteStore) ListSettlementLines(ctx context.Context, roundID string) ([]models.SettlementLine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT from_player_id, to_player_id, amount_cents
		 FROM settlement_lines WHERE round_id = ? ORDER BY position`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement lines: %w", err)
	}
	defer rows.Close()

	var lines []models.SettlementLine
	for rows.Next() {
		var l models.SettlementLine
		if err := rows.Scan(&l.FromPlayerID, &l.ToPlayerID, &l.AmountCents); err != nil {
			return nil, fmt.Errorf("failed to scan settlement line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement lines: %w", err)
	}
	return lines, nil
}
