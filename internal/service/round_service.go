package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/golfwager/internal/auth"
	"github.com/mmynk/golfwager/internal/calculator"
	"github.com/mmynk/golfwager/internal/config"
	"github.com/mmynk/golfwager/internal/middleware"
	"github.com/mmynk/golfwager/internal/models"
	"github.com/mmynk/golfwager/internal/render"
	"github.com/mmynk/golfwager/internal/storage"
	"github.com/mmynk/golfwager/pkg/api"
)

// RoundService implements the Connect RoundService.
// Every mutation loads the round, applies one raw entry and stores it inside
// a single store transaction, then re-runs the engines over the whole snapshot.
type RoundService struct {
	store    storage.Store
	presets  config.Presets
	renderer *render.Renderer
	metrics  *middleware.Metrics
	logger   *slog.Logger
}

// NewRoundService creates a RoundService. metrics may be nil.
func NewRoundService(store storage.Store, presets config.Presets, metrics *middleware.Metrics, logger *slog.Logger) *RoundService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundService{
		store:    store,
		presets:  presets,
		renderer: render.New(),
		metrics:  metrics,
		logger:   logger,
	}
}

// CreateRound validates the players and settings and stores a new round.
func (s *RoundService) CreateRound(ctx context.Context, req *connect.Request[api.CreateRoundRequest]) (*connect.Response[api.CreateRoundResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	s.logger.Info("CreateRound request received", "variant", req.Msg.Game.Variant, "players", len(req.Msg.Players))

	game, err := gameFromAPI(req.Msg.Game, s.presets)
	if err != nil {
		return nil, connectError(err)
	}

	round := &models.Round{
		Name:    strings.TrimSpace(req.Msg.Name),
		Players: playersFromAPI(req.Msg.Players),
		Game:    game,
		OwnerID: userID,
	}
	if err := round.Validate(); err != nil {
		return nil, connectError(err)
	}

	if err := s.store.CreateRound(ctx, round); err != nil {
		s.logger.Error("Failed to create round", "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("Round created", "round_id", round.ID, "variant", game.Variant())
	return connect.NewResponse(&api.CreateRoundResponse{Round: roundToAPI(round)}), nil
}

// GetRound returns the round snapshot. Anyone holding the id may read it.
func (s *RoundService) GetRound(ctx context.Context, req *connect.Request[api.GetRoundRequest]) (*connect.Response[api.GetRoundResponse], error) {
	round, err := s.store.GetRound(ctx, req.Msg.RoundID)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetRoundResponse{Round: roundToAPI(round)}), nil
}

// ListRounds returns the caller's rounds, newest first.
func (s *RoundService) ListRounds(ctx context.Context, req *connect.Request[api.ListRoundsRequest]) (*connect.Response[api.ListRoundsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	rounds, err := s.store.ListRoundsByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list rounds", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	summaries := make([]api.RoundSummary, 0, len(rounds))
	for _, r := range rounds {
		summaries = append(summaries, summaryToAPI(r))
	}
	return connect.NewResponse(&api.ListRoundsResponse{Rounds: summaries}), nil
}

// DeleteRound removes a round. Owner only.
func (s *RoundService) DeleteRound(ctx context.Context, req *connect.Request[api.DeleteRoundRequest]) (*connect.Response[api.DeleteRoundResponse], error) {
	if _, err := s.ownedRound(ctx, req.Msg.RoundID); err != nil {
		return nil, connectError(err)
	}
	if err := s.store.DeleteRound(ctx, req.Msg.RoundID); err != nil {
		return nil, connectError(err)
	}
	s.logger.Info("Round deleted", "round_id", req.Msg.RoundID)
	return connect.NewResponse(&api.DeleteRoundResponse{}), nil
}

// RecordStrokes merges stroke entries for one hole of a skins or wolf round.
func (s *RoundService) RecordStrokes(ctx context.Context, req *connect.Request[api.RecordStrokesRequest]) (*connect.Response[api.RecordStrokesResponse], error) {
	sb, err := s.mutate(ctx, req.Msg.RoundID, func(r *models.Round) error {
		if err := r.ValidateStrokes(req.Msg.Hole, req.Msg.Strokes); err != nil {
			return err
		}
		var card models.Scorecard
		switch g := r.Game.(type) {
		case *models.SkinsGame:
			if g.Strokes == nil {
				g.Strokes = models.Scorecard{}
			}
			card = g.Strokes
		case *models.WolfGame:
			if g.Strokes == nil {
				g.Strokes = models.Scorecard{}
			}
			card = g.Strokes
		default:
			return models.ErrVariantMismatch
		}
		for id, n := range req.Msg.Strokes {
			card.Set(req.Msg.Hole, id, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.RecordStrokesResponse{Scoreboard: sb}), nil
}

// SetWolfPartner records the wolf's pick for a hole. An empty partner means
// the wolf goes alone.
func (s *RoundService) SetWolfPartner(ctx context.Context, req *connect.Request[api.SetWolfPartnerRequest]) (*connect.Response[api.SetWolfPartnerResponse], error) {
	sb, err := s.mutate(ctx, req.Msg.RoundID, func(r *models.Round) error {
		if err := r.ValidatePartner(req.Msg.Hole, req.Msg.PartnerID); err != nil {
			return err
		}
		g := r.Game.(*models.WolfGame)
		if g.Partners == nil {
			g.Partners = map[int]string{}
		}
		if req.Msg.PartnerID == "" {
			delete(g.Partners, req.Msg.Hole)
		} else {
			g.Partners[req.Msg.Hole] = req.Msg.PartnerID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.SetWolfPartnerResponse{Scoreboard: sb}), nil
}

// RecordAwards stores a BBB hole. The hole counts as entered even with no winners.
func (s *RoundService) RecordAwards(ctx context.Context, req *connect.Request[api.RecordAwardsRequest]) (*connect.Response[api.RecordAwardsResponse], error) {
	awards := models.HoleAwards{Bingo: req.Msg.Bingo, Bango: req.Msg.Bango, Bongo: req.Msg.Bongo}
	sb, err := s.mutate(ctx, req.Msg.RoundID, func(r *models.Round) error {
		g, ok := r.Game.(*models.BBBGame)
		if !ok {
			return models.ErrVariantMismatch
		}
		if err := r.ValidateAwards(req.Msg.Hole, awards); err != nil {
			return err
		}
		if g.Awards == nil {
			g.Awards = map[int]models.HoleAwards{}
		}
		g.Awards[req.Msg.Hole] = awards
		return nil
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.RecordAwardsResponse{Scoreboard: sb}), nil
}

// ClearHole drops every raw entry for one hole.
func (s *RoundService) ClearHole(ctx context.Context, req *connect.Request[api.ClearHoleRequest]) (*connect.Response[api.ClearHoleResponse], error) {
	sb, err := s.mutate(ctx, req.Msg.RoundID, func(r *models.Round) error {
		if err := models.ValidateHole(req.Msg.Hole); err != nil {
			return err
		}
		switch g := r.Game.(type) {
		case *models.SkinsGame:
			delete(g.Strokes, req.Msg.Hole)
		case *models.WolfGame:
			delete(g.Strokes, req.Msg.Hole)
			delete(g.Partners, req.Msg.Hole)
		case *models.BBBGame:
			delete(g.Awards, req.Msg.Hole)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ClearHoleResponse{Scoreboard: sb}), nil
}

// LockRound finalizes a round and freezes its settlement lines. Locking an
// already locked round returns the frozen settlement.
func (s *RoundService) LockRound(ctx context.Context, req *connect.Request[api.LockRoundRequest]) (*connect.Response[api.LockRoundResponse], error) {
	round, err := s.ownedRound(ctx, req.Msg.RoundID)
	if err != nil {
		return nil, connectError(err)
	}
	s.logger.Info("LockRound request received", "round_id", round.ID)

	frozen := -1
	round, err = s.store.LockRound(ctx, round.ID, func(r *models.Round) ([]models.SettlementLine, error) {
		settled, err := calculator.SettleRound(r)
		if err != nil {
			return nil, err
		}
		frozen = len(settled.Lines)
		return settled.Lines, nil
	})
	if err != nil {
		s.logger.Error("Failed to lock round", "round_id", req.Msg.RoundID, "error", err)
		return nil, connectError(err)
	}
	if frozen >= 0 {
		s.metrics.SettlementLines(string(round.Game.Variant()), frozen)
		s.logger.Info("Round locked", "round_id", round.ID, "lines", frozen)
	}

	settlement, err := s.settlement(ctx, round)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.LockRoundResponse{Settlement: settlement}), nil
}

// GetScoreboard runs the round's engine and returns per-hole results and standings.
func (s *RoundService) GetScoreboard(ctx context.Context, req *connect.Request[api.GetScoreboardRequest]) (*connect.Response[api.GetScoreboardResponse], error) {
	round, err := s.store.GetRound(ctx, req.Msg.RoundID)
	if err != nil {
		return nil, connectError(err)
	}
	sb, err := s.scoreboard(round)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetScoreboardResponse{Scoreboard: sb}), nil
}

// GetSettlement returns net balances and who pays whom. Locked rounds report
// their frozen lines.
func (s *RoundService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.GetSettlementResponse], error) {
	round, err := s.store.GetRound(ctx, req.Msg.RoundID)
	if err != nil {
		return nil, connectError(err)
	}
	settlement, err := s.settlement(ctx, round)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetSettlementResponse{Settlement: settlement}), nil
}

func (s *RoundService) ownedRound(ctx context.Context, roundID string) (*models.Round, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, auth.ErrMissingToken
	}
	round, err := s.store.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return round, nil
}

// mutate applies fn to an unlocked round owned by the caller and saves it in
// one store transaction, then returns the fresh scoreboard.
func (s *RoundService) mutate(ctx context.Context, roundID string, fn func(*models.Round) error) (*api.Scoreboard, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connectError(auth.ErrMissingToken)
	}

	var rejected error
	round, err := s.store.ModifyRound(ctx, roundID, func(r *models.Round) error {
		switch {
		case r.OwnerID != userID:
			rejected = ErrNotOwner
		case r.Locked:
			rejected = ErrRoundLocked
		default:
			rejected = fn(r)
		}
		return rejected
	})
	switch {
	case rejected != nil:
		s.logger.Warn("Rejected hole entry", "round_id", roundID, "error", rejected)
		return nil, connectError(rejected)
	case err != nil:
		s.logger.Error("Failed to update round", "round_id", roundID, "error", err)
		return nil, connectError(err)
	}

	sb, err := s.scoreboard(round)
	if err != nil {
		return nil, connectError(err)
	}
	return sb, nil
}

func (s *RoundService) scoreboard(round *models.Round) (*api.Scoreboard, error) {
	res, err := calculator.Compute(round)
	if err != nil {
		return nil, err
	}
	sb := scoreboardToAPI(round, res)
	sb.Text = s.renderer.Scoreboard(round, res)
	return sb, nil
}

func (s *RoundService) settlement(ctx context.Context, round *models.Round) (*api.Settlement, error) {
	settled, err := calculator.SettleRound(round)
	if err != nil {
		return nil, err
	}
	if settled.Skipped {
		return &api.Settlement{Skipped: true, Frozen: round.Locked, Text: render.PointsOnly}, nil
	}

	lines := settled.Lines
	if round.Locked {
		if lines, err = s.store.ListSettlementLines(ctx, round.ID); err != nil {
			return nil, err
		}
	}
	return &api.Settlement{
		Frozen:   round.Locked,
		Balances: balancesToAPI(round, settled.Balances),
		Lines:    linesToAPI(lines),
		Text:     s.renderer.Settlement(round, lines),
	}, nil
}
