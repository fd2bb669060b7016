package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/golfwager/internal/auth"
	"github.com/mmynk/golfwager/internal/config"
	"github.com/mmynk/golfwager/internal/middleware"
	"github.com/mmynk/golfwager/internal/storage"
	"github.com/mmynk/golfwager/internal/storage/sqlite"
	"github.com/mmynk/golfwager/pkg/api"
)

type testEnv struct {
	rounds   *api.RoundServiceClient
	auth     *api.AuthServiceClient
	registry *prometheus.Registry
}

// setupTestServer serves both services over httptest with an on-disk SQLite store.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	return setupTestServerWithStore(t, nil)
}

// setupTestServerWithStore is setupTestServer with the round store wrapped by wrap.
func setupTestServerWithStore(t *testing.T, wrap func(storage.Store) storage.Store) *testEnv {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	var store storage.Store = db
	if wrap != nil {
		store = wrap(db)
	}

	logger := slog.New(slog.DiscardHandler)
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(db).WithCost(bcrypt.MinCost)

	roundPath, roundHandler := api.NewRoundServiceHandler(
		NewRoundService(store, config.DefaultPresets(), metrics, logger),
		connect.WithInterceptors(
			metrics.Interceptor(),
			middleware.RequireAuth(jwtManager,
				api.RoundServiceGetRoundProcedure,
				api.RoundServiceGetScoreboardProcedure,
				api.RoundServiceGetSettlementProcedure,
			),
		),
	)
	authPath, authHandler := api.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, db, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	)

	mux := http.NewServeMux()
	mux.Handle(roundPath, roundHandler)
	mux.Handle(authPath, authHandler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		db.Close()
	})

	return &testEnv{
		rounds:   api.NewRoundServiceClient(http.DefaultClient, server.URL),
		auth:     api.NewAuthServiceClient(http.DefaultClient, server.URL),
		registry: registry,
	}
}

func withToken[T any](msg *T, token string) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: "Scorer",
		Password:    "password123",
	}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Token)
	return resp.Msg.Token
}

func (e *testEnv) createRound(t *testing.T, token string, game api.GameSettings, ids ...string) string {
	t.Helper()
	names := map[string]string{"a": "Alice", "b": "Bob", "c": "Carol", "d": "Dan"}
	players := make([]api.Player, len(ids))
	for i, id := range ids {
		players[i] = api.Player{ID: id, Name: names[id]}
	}
	resp, err := e.rounds.CreateRound(context.Background(), withToken(&api.CreateRoundRequest{
		Players: players,
		Game:    game,
	}, token))
	require.NoError(t, err)
	return resp.Msg.Round.ID
}

func (e *testEnv) strokes(t *testing.T, token, roundID string, hole int, s map[string]int) *api.Scoreboard {
	t.Helper()
	resp, err := e.rounds.RecordStrokes(context.Background(), withToken(&api.RecordStrokesRequest{
		RoundID: roundID,
		Hole:    hole,
		Strokes: s,
	}, token))
	require.NoError(t, err)
	return resp.Msg.Scoreboard
}

func requireCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, connect.CodeOf(err), "error: %v", err)
}

func skins(stake int64) api.GameSettings {
	return api.GameSettings{Variant: "skins", Skins: &api.SkinsSettings{StakeCents: &stake}}
}
