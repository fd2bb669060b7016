package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/golfwager/internal/models"
)

// Presets are the per-variant settings used when a new round leaves them unset.
type Presets struct {
	Skins SkinsPreset
	Wolf  WolfPreset
	BBB   BBBPreset
}

type SkinsPreset struct {
	StakeCents int64
}

type WolfPreset struct {
	PointsPerHole  int
	LoneMultiplier int
	CentsPerPoint  int64
}

type BBBPreset struct {
	CentsPerPoint int64
}

// DefaultPresets are the built-in settings. Wolf and BBB default to points only.
func DefaultPresets() Presets {
	return Presets{
		Skins: SkinsPreset{StakeCents: 100},
		Wolf:  WolfPreset{PointsPerHole: 1, LoneMultiplier: 2},
	}
}

// presetsFile mirrors the YAML layout. Pointers tell "absent" from zero.
type presetsFile struct {
	Skins struct {
		StakeCents *int64 `yaml:"stake_cents"`
	} `yaml:"skins"`
	Wolf struct {
		PointsPerHole  *int   `yaml:"points_per_hole"`
		LoneMultiplier *int   `yaml:"lone_multiplier"`
		CentsPerPoint  *int64 `yaml:"cents_per_point"`
	} `yaml:"wolf"`
	BBB struct {
		CentsPerPoint *int64 `yaml:"cents_per_point"`
	} `yaml:"bbb"`
}

// LoadPresets reads presets from path on top of the built-in defaults.
// An empty path or a missing file yields the defaults.
func LoadPresets(path string) (Presets, error) {
	p := DefaultPresets()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read presets: %w", err)
	}

	var f presetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return p, fmt.Errorf("parse presets %s: %w", path, err)
	}

	override(&p.Skins.StakeCents, f.Skins.StakeCents)
	override(&p.Wolf.PointsPerHole, f.Wolf.PointsPerHole)
	override(&p.Wolf.LoneMultiplier, f.Wolf.LoneMultiplier)
	override(&p.Wolf.CentsPerPoint, f.Wolf.CentsPerPoint)
	override(&p.BBB.CentsPerPoint, f.BBB.CentsPerPoint)

	if err := p.validate(); err != nil {
		return p, fmt.Errorf("presets %s: %w", path, err)
	}
	return p, nil
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (p Presets) validate() error {
	switch {
	case p.Skins.StakeCents <= 0:
		return models.ErrStake
	case p.Wolf.PointsPerHole <= 0, p.Wolf.LoneMultiplier <= 0:
		return models.ErrWolfPoints
	case p.Wolf.CentsPerPoint < 0, p.BBB.CentsPerPoint < 0:
		return models.ErrNegativeRate
	}
	return nil
}

// NewGame returns an empty game of variant v seeded with the preset settings.
func (p Presets) NewGame(v models.Variant) (models.Game, error) {
	switch v {
	case models.VariantSkins:
		return &models.SkinsGame{StakeCents: p.Skins.StakeCents, Strokes: models.Scorecard{}}, nil
	case models.VariantWolf:
		return &models.WolfGame{
			PointsPerHole:  p.Wolf.PointsPerHole,
			LoneMultiplier: p.Wolf.LoneMultiplier,
			CentsPerPoint:  p.Wolf.CentsPerPoint,
			Partners:       map[int]string{},
			Strokes:        models.Scorecard{},
		}, nil
	case models.VariantBBB:
		return &models.BBBGame{CentsPerPoint: p.BBB.CentsPerPoint, Awards: map[int]models.HoleAwards{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownVariant, v)
	}
}
