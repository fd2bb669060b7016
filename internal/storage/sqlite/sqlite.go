// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/golfwager/internal/models"
	"github.com/mmynk/golfwager/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection. Immediate
	// transactions take the write lock up front, so read-modify-write
	// cycles on a round are serialized.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// gameRow is the flattened per-variant settings stored on the rounds table.
type gameRow struct {
	variant        string
	stakeCents     int64
	pointsPerHole  int
	loneMultiplier int
	startingIndex  int
	centsPerPoint  int64
}

func flattenGame(g models.Game) (gameRow, error) {
	switch g := g.(type) {
	case *models.SkinsGame:
		return gameRow{variant: string(models.VariantSkins), stakeCents: g.StakeCents}, nil
	case *models.WolfGame:
		return gameRow{
			variant:        string(models.VariantWolf),
			pointsPerHole:  g.PointsPerHole,
			loneMultiplier: g.LoneMultiplier,
			startingIndex:  g.StartingIndex,
			centsPerPoint:  g.CentsPerPoint,
		}, nil
	case *models.BBBGame:
		return gameRow{variant: string(models.VariantBBB), centsPerPoint: g.CentsPerPoint}, nil
	default:
		return gameRow{}, fmt.Errorf("unsupported game %T", g)
	}
}

func (r gameRow) game() (models.Game, error) {
	switch models.Variant(r.variant) {
	case models.VariantSkins:
		return &models.SkinsGame{StakeCents: r.stakeCents, Strokes: models.Scorecard{}}, nil
	case models.VariantWolf:
		return &models.WolfGame{
			PointsPerHole:  r.pointsPerHole,
			LoneMultiplier: r.loneMultiplier,
			StartingIndex:  r.startingIndex,
			CentsPerPoint:  r.centsPerPoint,
			Partners:       map[int]string{},
			Strokes:        models.Scorecard{},
		}, nil
	case models.VariantBBB:
		return &models.BBBGame{CentsPerPoint: r.centsPerPoint, Awards: map[int]models.HoleAwards{}}, nil
	default:
		return nil, fmt.Errorf("unknown variant in database: %q", r.variant)
	}
}

// CreateRound persists a new round with its players and any entries already set.
func (s *SQLiteStore) CreateRound(ctx context.Context, round *models.Round) error {
	if round.ID == "" {
		round.ID = uuid.New().String()
	}
	if round.CreatedAt == 0 {
		round.CreatedAt = time.Now().Unix()
	}
	if round.Name == "" {
		round.Name = generateName(round)
	}

	row, err := flattenGame(round.Game)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rounds (id, name, variant, stake_cents, points_per_hole, lone_multiplier,
		 starting_index, cents_per_point, locked, owner_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		round.ID, round.Name, row.variant, row.stakeCents, row.pointsPerHole, row.loneMultiplier,
		row.startingIndex, row.centsPerPoint, round.Locked, round.OwnerID, round.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}

	for i, p := range round.Players {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO round_players (round_id, position, player_id, name) VALUES (?, ?, ?, ?)",
			round.ID, i, p.ID, p.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
	}

	if err := insertEntries(ctx, tx, round.ID, round.Game); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetRound retrieves a round by ID, including players and every hole entry.
func (s *SQLiteStore) GetRound(ctx context.Context, roundID string) (*models.Round, error) {
	return getRound(ctx, s.db, roundID)
}

func getRound(ctx context.Context, q querier, roundID string) (*models.Round, error) {
	round := &models.Round{}
	var row gameRow
	err := q.QueryRowContext(ctx,
		`SELECT id, name, variant, stake_cents, points_per_hole, lone_multiplier, starting_index,
		 cents_per_point, locked, owner_id, created_at FROM rounds WHERE id = ?`,
		roundID,
	).Scan(&round.ID, &round.Name, &row.variant, &row.stakeCents, &row.pointsPerHole, &row.loneMultiplier,
		&row.startingIndex, &row.centsPerPoint, &round.Locked, &round.OwnerID, &round.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("round %s: %w", roundID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	if round.Game, err = row.game(); err != nil {
		return nil, err
	}
	if round.Players, err = loadPlayers(ctx, q, roundID); err != nil {
		return nil, err
	}
	if err := loadEntries(ctx, q, roundID, round.Game); err != nil {
		return nil, err
	}
	return round, nil
}

func loadPlayers(ctx context.Context, q querier, roundID string) ([]models.Player, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT player_id, name FROM round_players WHERE round_id = ? ORDER BY position",
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// ModifyRound loads the round, applies fn and writes the result back inside
// one transaction. Nothing is written when fn fails.
func (s *SQLiteStore) ModifyRound(ctx context.Context, roundID string, fn func(*models.Round) error) (*models.Round, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	round, err := getRound(ctx, tx, roundID)
	if err != nil {
		return nil, err
	}
	if err := fn(round); err != nil {
		return nil, err
	}
	if err := writeRound(ctx, tx, round); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return round, nil
}

// LockRound sets the locked flag and freezes the lines settle computes from
// the stored round, both in one transaction. An already locked round is
// returned unchanged without calling settle.
func (s *SQLiteStore) LockRound(ctx context.Context, roundID string, settle func(*models.Round) ([]models.SettlementLine, error)) (*models.Round, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	round, err := getRound(ctx, tx, roundID)
	if err != nil {
		return nil, err
	}
	if round.Locked {
		return round, nil
	}

	lines, err := settle(round)
	if err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE rounds SET locked = 1 WHERE id = ?", roundID); err != nil {
		return nil, fmt.Errorf("failed to lock round: %w", err)
	}
	if err := replaceSettlementLines(ctx, tx, roundID, lines); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	round.Locked = true
	return round, nil
}

func writeRound(ctx context.Context, tx *sql.Tx, round *models.Round) error {
	row, err := flattenGame(round.Game)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE rounds SET name = ?, stake_cents = ?, points_per_hole = ?, lone_multiplier = ?,
		 starting_index = ?, cents_per_point = ?, locked = ? WHERE id = ? AND variant = ?`,
		round.Name, row.stakeCents, row.pointsPerHole, row.loneMultiplier,
		row.startingIndex, row.centsPerPoint, round.Locked, round.ID, row.variant,
	)
	if err != nil {
		return fmt.Errorf("failed to update round: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	} else if n == 0 {
		return fmt.Errorf("round %s: %w", round.ID, storage.ErrNotFound)
	}

	for _, table := range []string{"strokes", "wolf_partners", "hole_awards"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE round_id = ?", round.ID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return insertEntries(ctx, tx, round.ID, round.Game)
}

// DeleteRound removes a round by ID. Entries cascade.
func (s *SQLiteStore) DeleteRound(ctx context.Context, roundID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rounds WHERE id = ?", roundID)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("round %s: %w", roundID, storage.ErrNotFound)
	}
	return nil
}

// ListRoundsByOwner loads every round the owner created, newest first.
func (s *SQLiteStore) ListRoundsByOwner(ctx context.Context, ownerID string) ([]*models.Round, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM rounds WHERE owner_id = ? ORDER BY created_at DESC, id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan round id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rounds: %w", err)
	}

	rounds := make([]*models.Round, 0, len(ids))
	for _, id := range ids {
		round, err := s.GetRound(ctx, id)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// generateName creates a round name from the game and players.
func generateName(round *models.Round) string {
	game := "Round"
	if round.Game != nil {
		switch round.Game.Variant() {
		case models.VariantSkins:
			game = "Skins"
		case models.VariantWolf:
			game = "Wolf"
		case models.VariantBBB:
			game = "Bingo Bango Bongo"
		}
	}

	names := make([]string, len(round.Players))
	for i, p := range round.Players {
		names[i] = p.Name
	}
	switch {
	case len(names) == 0:
		return fmt.Sprintf("%s - %s", game, time.Now().Format("Jan 2, 2006"))
	case len(names) <= 3:
		return fmt.Sprintf("%s with %s", game, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s with %s and %d others", game, strings.Join(names[:2], ", "), len(names)-2)
	}
}
