package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mmynk/golfwager/internal/models"
	"github.com/mmynk/golfwager/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func foursome() []models.Player {
	return []models.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Charlie"},
		{ID: "p4", Name: "Diana"},
	}
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateRound generates ID and name", func(t *testing.T) {
		round := &models.Round{
			Players: foursome()[:2],
			Game:    &models.SkinsGame{StakeCents: 500, Strokes: models.Scorecard{}},
			OwnerID: "owner-1",
		}

		if err := store.CreateRound(ctx, round); err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}
		if round.ID == "" {
			t.Error("Expected round ID to be generated")
		}
		if round.Name != "Skins with Alice, Bob" {
			t.Errorf("Unexpected generated name: %s", round.Name)
		}
		if round.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("Skins round round-trips strokes", func(t *testing.T) {
		strokes := models.Scorecard{}
		strokes.Set(1, "p1", 4)
		strokes.Set(1, "p2", 5)
		strokes.Set(2, "p1", 3)
		original := &models.Round{
			Name:    "Saturday skins",
			Players: foursome()[:2],
			Game:    &models.SkinsGame{StakeCents: 250, Strokes: strokes},
			OwnerID: "owner-1",
		}
		if err := store.CreateRound(ctx, original); err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}

		got, err := store.GetRound(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if got.Name != "Saturday skins" || got.OwnerID != "owner-1" {
			t.Errorf("round header mismatch: %+v", got)
		}
		if len(got.Players) != 2 || got.Players[0].Name != "Alice" || got.Players[1].ID != "p2" {
			t.Errorf("players mismatch: %+v", got.Players)
		}
		g, ok := got.Game.(*models.SkinsGame)
		if !ok {
			t.Fatalf("expected *SkinsGame, got %T", got.Game)
		}
		if g.StakeCents != 250 {
			t.Errorf("StakeCents = %d, want 250", g.StakeCents)
		}
		if n, ok := g.Strokes.Stroke(1, "p2"); !ok || n != 5 {
			t.Errorf("hole 1 p2 = %d (%v), want 5", n, ok)
		}
		if _, ok := g.Strokes.Stroke(2, "p2"); ok {
			t.Error("hole 2 p2 should be missing")
		}
	})

	t.Run("Wolf round round-trips partners and settings", func(t *testing.T) {
		round := &models.Round{
			Players: foursome(),
			Game: &models.WolfGame{
				PointsPerHole:  2,
				LoneMultiplier: 3,
				StartingIndex:  1,
				CentsPerPoint:  50,
				Partners:       map[int]string{1: "p3", 7: "p1"},
				Strokes:        models.Scorecard{},
			},
			OwnerID: "owner-2",
		}
		if err := store.CreateRound(ctx, round); err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}

		got, err := store.GetRound(ctx, round.ID)
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		g := got.Game.(*models.WolfGame)
		if g.PointsPerHole != 2 || g.LoneMultiplier != 3 || g.StartingIndex != 1 || g.CentsPerPoint != 50 {
			t.Errorf("wolf settings mismatch: %+v", g)
		}
		if g.Partners[1] != "p3" || g.Partners[7] != "p1" || len(g.Partners) != 2 {
			t.Errorf("partners mismatch: %v", g.Partners)
		}
		if !strings.Contains(got.Name, "and 2 others") {
			t.Errorf("Unexpected generated name: %s", got.Name)
		}
	})

	t.Run("ModifyRound replaces BBB awards", func(t *testing.T) {
		round := &models.Round{
			Players: foursome()[:3],
			Game: &models.BBBGame{
				CentsPerPoint: 100,
				Awards:        map[int]models.HoleAwards{1: {Bingo: "p1"}},
			},
			OwnerID: "owner-1",
		}
		if err := store.CreateRound(ctx, round); err != nil {
			t.Fatalf("CreateRound failed: %v", err)
		}

		_, err := store.ModifyRound(ctx, round.ID, func(r *models.Round) error {
			g := r.Game.(*models.BBBGame)
			g.Awards[1] = models.HoleAwards{Bango: "p2"}
			g.Awards[2] = models.HoleAwards{}
			return nil
		})
		if err != nil {
			t.Fatalf("ModifyRound failed: %v", err)
		}

		got, err := store.GetRound(ctx, round.ID)
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if got.Locked {
			t.Error("ModifyRound should not lock the round")
		}
		awards := got.Game.(*models.BBBGame).Awards
		if awards[1] != (models.HoleAwards{Bango: "p2"}) {
			t.Errorf("hole 1 awards = %+v", awards[1])
		}
		if a, ok := awards[2]; !ok || a != (models.HoleAwards{}) {
			t.Errorf("hole 2 should be entered with no winners, got %+v (%v)", a, ok)
		}
	})

	t.Run("GetRound returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetRound(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListRoundsByOwner and DeleteRound", func(t *testing.T) {
		rounds, err := store.ListRoundsByOwner(ctx, "owner-1")
		if err != nil {
			t.Fatalf("ListRoundsByOwner failed: %v", err)
		}
		if len(rounds) != 3 {
			t.Fatalf("Expected 3 rounds for owner-1, got %d", len(rounds))
		}

		if err := store.DeleteRound(ctx, rounds[0].ID); err != nil {
			t.Fatalf("DeleteRound failed: %v", err)
		}
		if _, err := store.GetRound(ctx, rounds[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected deleted round to be gone, got %v", err)
		}
		if err := store.DeleteRound(ctx, rounds[0].ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
		}
	})
}

func newSkinsRound(t *testing.T, store *SQLiteStore, players int) *models.Round {
	t.Helper()
	round := &models.Round{
		Players: foursome()[:players],
		Game:    &models.SkinsGame{StakeCents: 100, Strokes: models.Scorecard{}},
		OwnerID: "owner",
	}
	if err := store.CreateRound(context.Background(), round); err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	return round
}

func TestLockRound(t *testing.T) {
	ctx := context.Background()
	lines := []models.SettlementLine{
		{FromPlayerID: "p1", ToPlayerID: "p3", AmountCents: 300},
		{FromPlayerID: "p2", ToPlayerID: "p3", AmountCents: 200},
	}

	t.Run("freezes lines with the flag", func(t *testing.T) {
		store := newTestStore(t)
		round := newSkinsRound(t, store, 3)

		locked, err := store.LockRound(ctx, round.ID, func(*models.Round) ([]models.SettlementLine, error) {
			return lines, nil
		})
		if err != nil {
			t.Fatalf("LockRound failed: %v", err)
		}
		if !locked.Locked {
			t.Error("expected returned round to be locked")
		}

		got, err := store.ListSettlementLines(ctx, round.ID)
		if err != nil {
			t.Fatalf("ListSettlementLines failed: %v", err)
		}
		if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
			t.Errorf("lines mismatch: %+v", got)
		}

		called := false
		if _, err := store.LockRound(ctx, round.ID, func(*models.Round) ([]models.SettlementLine, error) {
			called = true
			return nil, nil
		}); err != nil {
			t.Fatalf("second LockRound failed: %v", err)
		}
		if called {
			t.Error("settle ran for an already locked round")
		}
		if got, _ := store.ListSettlementLines(ctx, round.ID); len(got) != 2 {
			t.Errorf("relock changed frozen lines: %+v", got)
		}
	})

	t.Run("failed line insert leaves the round unlocked", func(t *testing.T) {
		store := newTestStore(t)
		round := newSkinsRound(t, store, 3)

		bad := append([]models.SettlementLine{}, lines...)
		bad[1].AmountCents = 0
		if _, err := store.LockRound(ctx, round.ID, func(*models.Round) ([]models.SettlementLine, error) {
			return bad, nil
		}); err == nil {
			t.Fatal("expected LockRound to fail on a zero amount line")
		}

		got, err := store.GetRound(ctx, round.ID)
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if got.Locked {
			t.Error("round locked despite failed line insert")
		}
		if frozen, _ := store.ListSettlementLines(ctx, round.ID); len(frozen) != 0 {
			t.Errorf("partial lines left behind: %+v", frozen)
		}

		if _, err := store.LockRound(ctx, round.ID, func(*models.Round) ([]models.SettlementLine, error) {
			return lines, nil
		}); err != nil {
			t.Fatalf("retry LockRound failed: %v", err)
		}
	})

	t.Run("settle error writes nothing", func(t *testing.T) {
		store := newTestStore(t)
		round := newSkinsRound(t, store, 2)

		boom := errors.New("boom")
		if _, err := store.LockRound(ctx, round.ID, func(*models.Round) ([]models.SettlementLine, error) {
			return nil, boom
		}); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if got, _ := store.GetRound(ctx, round.ID); got.Locked {
			t.Error("round locked after settle error")
		}
	})

	t.Run("missing round", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.LockRound(ctx, "nope", func(*models.Round) ([]models.SettlementLine, error) {
			return nil, nil
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestModifyRound(t *testing.T) {
	ctx := context.Background()

	t.Run("fn error writes nothing", func(t *testing.T) {
		store := newTestStore(t)
		round := newSkinsRound(t, store, 2)

		boom := errors.New("boom")
		_, err := store.ModifyRound(ctx, round.ID, func(r *models.Round) error {
			r.Game.(*models.SkinsGame).Strokes.Set(1, "p1", 4)
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		got, _ := store.GetRound(ctx, round.ID)
		if _, ok := got.Game.(*models.SkinsGame).Strokes.Stroke(1, "p1"); ok {
			t.Error("stroke saved despite fn error")
		}
	})

	t.Run("concurrent writers do not lose entries", func(t *testing.T) {
		store := newTestStore(t)
		round := newSkinsRound(t, store, 4)

		var wg sync.WaitGroup
		errs := make(chan error, len(round.Players)*3)
		for hole := 1; hole <= 3; hole++ {
			for _, p := range round.Players {
				wg.Add(1)
				go func(hole int, id string) {
					defer wg.Done()
					_, err := store.ModifyRound(ctx, round.ID, func(r *models.Round) error {
						r.Game.(*models.SkinsGame).Strokes.Set(hole, id, hole+3)
						return nil
					})
					errs <- err
				}(hole, p.ID)
			}
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("ModifyRound failed: %v", err)
			}
		}

		got, err := store.GetRound(ctx, round.ID)
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		card := got.Game.(*models.SkinsGame).Strokes
		for hole := 1; hole <= 3; hole++ {
			for _, p := range round.Players {
				if n, ok := card.Stroke(hole, p.ID); !ok || n != hole+3 {
					t.Errorf("hole %d %s = %d, %v", hole, p.ID, n, ok)
				}
			}
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("Keeper@Example.com", "Keeper", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "keeper@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("ID mismatch: got %s, want %s", byEmail.ID, user.ID)
	}

	if _, err := store.GetUserByID(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := store.CreateUser(ctx, models.NewUser("keeper@example.com", "Dup", "hash")); err == nil {
		t.Error("Expected duplicate email to fail")
	}
}

func TestGenerateName(t *testing.T) {
	tests := []struct {
		round        *models.Round
		wantContains string
	}{
		{&models.Round{}, "Round -"},
		{&models.Round{Game: &models.WolfGame{}, Players: foursome()}, "Wolf with Alice, Bob and 2 others"},
		{&models.Round{Game: &models.BBBGame{}, Players: foursome()[:3]}, "Bingo Bango Bongo with Alice, Bob, Charlie"},
		{&models.Round{Game: &models.SkinsGame{}, Players: foursome()[:1]}, "Skins with Alice"},
	}

	for _, tt := range tests {
		t.Run(tt.wantContains, func(t *testing.T) {
			got := generateName(tt.round)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateName() = %q, want to contain %q", got, tt.wantContains)
			}
		})
	}
}
