package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/golfwager/internal/models"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, ":9090", cfg.Addr())
	require.Equal(t, "./data/rounds.db", cfg.DBPath)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "-1h")

	_, err := Load()
	require.Error(t, err)
}

func writePresets(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPresets(t *testing.T) {
	t.Run("defaults without a path", func(t *testing.T) {
		p, err := LoadPresets("")
		require.NoError(t, err)
		require.Equal(t, DefaultPresets(), p)
	})

	t.Run("missing file", func(t *testing.T) {
		p, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, DefaultPresets(), p)
	})

	t.Run("overrides field by field", func(t *testing.T) {
		path := writePresets(t, "skins:\n  stake_cents: 500\nwolf:\n  cents_per_point: 25\n")
		p, err := LoadPresets(path)
		require.NoError(t, err)
		require.Equal(t, int64(500), p.Skins.StakeCents)
		require.Equal(t, int64(25), p.Wolf.CentsPerPoint)
		require.Equal(t, 1, p.Wolf.PointsPerHole)
		require.Equal(t, 2, p.Wolf.LoneMultiplier)
		require.Zero(t, p.BBB.CentsPerPoint)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writePresets(t, "skins:\n  stake_cents: 0\n")
		_, err := LoadPresets(path)
		require.ErrorIs(t, err, models.ErrStake)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writePresets(t, "skins: [\n")
		_, err := LoadPresets(path)
		require.Error(t, err)
	})
}

func TestPresetsNewGame(t *testing.T) {
	p := Presets{
		Skins: SkinsPreset{StakeCents: 200},
		Wolf:  WolfPreset{PointsPerHole: 2, LoneMultiplier: 3, CentsPerPoint: 50},
		BBB:   BBBPreset{CentsPerPoint: 10},
	}

	g, err := p.NewGame(models.VariantSkins)
	require.NoError(t, err)
	skins := g.(*models.SkinsGame)
	require.Equal(t, int64(200), skins.StakeCents)
	require.NotNil(t, skins.Strokes)

	g, err = p.NewGame(models.VariantWolf)
	require.NoError(t, err)
	wolf := g.(*models.WolfGame)
	require.Equal(t, 2, wolf.PointsPerHole)
	require.Equal(t, 3, wolf.LoneMultiplier)
	require.Equal(t, int64(50), wolf.CentsPerPoint)
	require.NotNil(t, wolf.Partners)

	g, err = p.NewGame(models.VariantBBB)
	require.NoError(t, err)
	require.Equal(t, int64(10), g.(*models.BBBGame).CentsPerPoint)

	_, err = p.NewGame("nassau")
	require.ErrorIs(t, err, models.ErrUnknownVariant)
}
