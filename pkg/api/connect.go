package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	RoundServiceName = "golfwager.v1.RoundService"
	AuthServiceName  = "golfwager.v1.AuthService"
)

const (
	RoundServiceCreateRoundProcedure    = "/golfwager.v1.RoundService/CreateRound"
	RoundServiceGetRoundProcedure       = "/golfwager.v1.RoundService/GetRound"
	RoundServiceListRoundsProcedure     = "/golfwager.v1.RoundService/ListRounds"
	RoundServiceDeleteRoundProcedure    = "/golfwager.v1.RoundService/DeleteRound"
	RoundServiceRecordStrokesProcedure  = "/golfwager.v1.RoundService/RecordStrokes"
	RoundServiceSetWolfPartnerProcedure = "/golfwager.v1.RoundService/SetWolfPartner"
	RoundServiceRecordAwardsProcedure   = "/golfwager.v1.RoundService/RecordAwards"
	RoundServiceClearHoleProcedure      = "/golfwager.v1.RoundService/ClearHole"
	RoundServiceLockRoundProcedure      = "/golfwager.v1.RoundService/LockRound"
	RoundServiceGetScoreboardProcedure  = "/golfwager.v1.RoundService/GetScoreboard"
	RoundServiceGetSettlementProcedure  = "/golfwager.v1.RoundService/GetSettlement"

	AuthServiceRegisterProcedure       = "/golfwager.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/golfwager.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/golfwager.v1.AuthService/GetCurrentUser"
)

// RoundServiceHandler is implemented by the round server.
type RoundServiceHandler interface {
	CreateRound(context.Context, *connect.Request[CreateRoundRequest]) (*connect.Response[CreateRoundResponse], error)
	GetRound(context.Context, *connect.Request[GetRoundRequest]) (*connect.Response[GetRoundResponse], error)
	ListRounds(context.Context, *connect.Request[ListRoundsRequest]) (*connect.Response[ListRoundsResponse], error)
	DeleteRound(context.Context, *connect.Request[DeleteRoundRequest]) (*connect.Response[DeleteRoundResponse], error)
	RecordStrokes(context.Context, *connect.Request[RecordStrokesRequest]) (*connect.Response[RecordStrokesResponse], error)
	SetWolfPartner(context.Context, *connect.Request[SetWolfPartnerRequest]) (*connect.Response[SetWolfPartnerResponse], error)
	RecordAwards(context.Context, *connect.Request[RecordAwardsRequest]) (*connect.Response[RecordAwardsResponse], error)
	ClearHole(context.Context, *connect.Request[ClearHoleRequest]) (*connect.Response[ClearHoleResponse], error)
	LockRound(context.Context, *connect.Request[LockRoundRequest]) (*connect.Response[LockRoundResponse], error)
	GetScoreboard(context.Context, *connect.Request[GetScoreboardRequest]) (*connect.Response[GetScoreboardResponse], error)
	GetSettlement(context.Context, *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error)
}

// AuthServiceHandler is implemented by the auth server.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

func handle[Req, Res any](
	mux *http.ServeMux,
	procedure string,
	fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, opts...))
}

// NewRoundServiceHandler returns the mount path and handler for the round service.
func NewRoundServiceHandler(svc RoundServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)
	mux := http.NewServeMux()
	handle(mux, RoundServiceCreateRoundProcedure, svc.CreateRound, opts)
	handle(mux, RoundServiceGetRoundProcedure, svc.GetRound, opts)
	handle(mux, RoundServiceListRoundsProcedure, svc.ListRounds, opts)
	handle(mux, RoundServiceDeleteRoundProcedure, svc.DeleteRound, opts)
	handle(mux, RoundServiceRecordStrokesProcedure, svc.RecordStrokes, opts)
	handle(mux, RoundServiceSetWolfPartnerProcedure, svc.SetWolfPartner, opts)
	handle(mux, RoundServiceRecordAwardsProcedure, svc.RecordAwards, opts)
	handle(mux, RoundServiceClearHoleProcedure, svc.ClearHole, opts)
	handle(mux, RoundServiceLockRoundProcedure, svc.LockRound, opts)
	handle(mux, RoundServiceGetScoreboardProcedure, svc.GetScoreboard, opts)
	handle(mux, RoundServiceGetSettlementProcedure, svc.GetSettlement, opts)
	return "/" + RoundServiceName + "/", mux
}

// NewAuthServiceHandler returns the mount path and handler for the auth service.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)
	mux := http.NewServeMux()
	handle(mux, AuthServiceRegisterProcedure, svc.Register, opts)
	handle(mux, AuthServiceLoginProcedure, svc.Login, opts)
	handle(mux, AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts)
	return "/" + AuthServiceName + "/", mux
}

func newClient[Req, Res any](hc connect.HTTPClient, baseURL, procedure string, opts []connect.ClientOption) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](hc, baseURL+procedure, opts...)
}

// RoundServiceClient calls a remote round service.
type RoundServiceClient struct {
	createRound    *connect.Client[CreateRoundRequest, CreateRoundResponse]
	getRound       *connect.Client[GetRoundRequest, GetRoundResponse]
	listRounds     *connect.Client[ListRoundsRequest, ListRoundsResponse]
	deleteRound    *connect.Client[DeleteRoundRequest, DeleteRoundResponse]
	recordStrokes  *connect.Client[RecordStrokesRequest, RecordStrokesResponse]
	setWolfPartner *connect.Client[SetWolfPartnerRequest, SetWolfPartnerResponse]
	recordAwards   *connect.Client[RecordAwardsRequest, RecordAwardsResponse]
	clearHole      *connect.Client[ClearHoleRequest, ClearHoleResponse]
	lockRound      *connect.Client[LockRoundRequest, LockRoundResponse]
	getScoreboard  *connect.Client[GetScoreboardRequest, GetScoreboardResponse]
	getSettlement  *connect.Client[GetSettlementRequest, GetSettlementResponse]
}

func NewRoundServiceClient(hc connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RoundServiceClient {
	opts = append([]connect.ClientOption{clientCodec()}, opts...)
	return &RoundServiceClient{
		createRound:    newClient[CreateRoundRequest, CreateRoundResponse](hc, baseURL, RoundServiceCreateRoundProcedure, opts),
		getRound:       newClient[GetRoundRequest, GetRoundResponse](hc, baseURL, RoundServiceGetRoundProcedure, opts),
		listRounds:     newClient[ListRoundsRequest, ListRoundsResponse](hc, baseURL, RoundServiceListRoundsProcedure, opts),
		deleteRound:    newClient[DeleteRoundRequest, DeleteRoundResponse](hc, baseURL, RoundServiceDeleteRoundProcedure, opts),
		recordStrokes:  newClient[RecordStrokesRequest, RecordStrokesResponse](hc, baseURL, RoundServiceRecordStrokesProcedure, opts),
		setWolfPartner: newClient[SetWolfPartnerRequest, SetWolfPartnerResponse](hc, baseURL, RoundServiceSetWolfPartnerProcedure, opts),
		recordAwards:   newClient[RecordAwardsRequest, RecordAwardsResponse](hc, baseURL, RoundServiceRecordAwardsProcedure, opts),
		clearHole:      newClient[ClearHoleRequest, ClearHoleResponse](hc, baseURL, RoundServiceClearHoleProcedure, opts),
		lockRound:      newClient[LockRoundRequest, LockRoundResponse](hc, baseURL, RoundServiceLockRoundProcedure, opts),
		getScoreboard:  newClient[GetScoreboardRequest, GetScoreboardResponse](hc, baseURL, RoundServiceGetScoreboardProcedure, opts),
		getSettlement:  newClient[GetSettlementRequest, GetSettlementResponse](hc, baseURL, RoundServiceGetSettlementProcedure, opts),
	}
}

func (c *RoundServiceClient) CreateRound(ctx context.Context, req *connect.Request[CreateRoundRequest]) (*connect.Response[CreateRoundResponse], error) {
	return c.createRound.CallUnary(ctx, req)
}

func (c *RoundServiceClient) GetRound(ctx context.Context, req *connect.Request[GetRoundRequest]) (*connect.Response[GetRoundResponse], error) {
	return c.getRound.CallUnary(ctx, req)
}

func (c *RoundServiceClient) ListRounds(ctx context.Context, req *connect.Request[ListRoundsRequest]) (*connect.Response[ListRoundsResponse], error) {
	return c.listRounds.CallUnary(ctx, req)
}

func (c *RoundServiceClient) DeleteRound(ctx context.Context, req *connect.Request[DeleteRoundRequest]) (*connect.Response[DeleteRoundResponse], error) {
	return c.deleteRound.CallUnary(ctx, req)
}

func (c *RoundServiceClient) RecordStrokes(ctx context.Context, req *connect.Request[RecordStrokesRequest]) (*connect.Response[RecordStrokesResponse], error) {
	return c.recordStrokes.CallUnary(ctx, req)
}

func (c *RoundServiceClient) SetWolfPartner(ctx context.Context, req *connect.Request[SetWolfPartnerRequest]) (*connect.Response[SetWolfPartnerResponse], error) {
	return c.setWolfPartner.CallUnary(ctx, req)
}

func (c *RoundServiceClient) RecordAwards(ctx context.Context, req *connect.Request[RecordAwardsRequest]) (*connect.Response[RecordAwardsResponse], error) {
	return c.recordAwards.CallUnary(ctx, req)
}

func (c *RoundServiceClient) ClearHole(ctx context.Context, req *connect.Request[ClearHoleRequest]) (*connect.Response[ClearHoleResponse], error) {
	return c.clearHole.CallUnary(ctx, req)
}

func (c *RoundServiceClient) LockRound(ctx context.Context, req *connect.Request[LockRoundRequest]) (*connect.Response[LockRoundResponse], error) {
	return c.lockRound.CallUnary(ctx, req)
}

func (c *RoundServiceClient) GetScoreboard(ctx context.Context, req *connect.Request[GetScoreboardRequest]) (*connect.Response[GetScoreboardResponse], error) {
	return c.getScoreboard.CallUnary(ctx, req)
}

func (c *RoundServiceClient) GetSettlement(ctx context.Context, req *connect.Request[GetSettlementRequest]) (*connect.Response[GetSettlementResponse], error) {
	return c.getSettlement.CallUnary(ctx, req)
}

// AuthServiceClient calls a remote auth service.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

func NewAuthServiceClient(hc connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = append([]connect.ClientOption{clientCodec()}, opts...)
	return &AuthServiceClient{
		register:       newClient[RegisterRequest, RegisterResponse](hc, baseURL, AuthServiceRegisterProcedure, opts),
		login:          newClient[LoginRequest, LoginResponse](hc, baseURL, AuthServiceLoginProcedure, opts),
		getCurrentUser: newClient[GetCurrentUserRequest, GetCurrentUserResponse](hc, baseURL, AuthServiceGetCurrentUserProcedure, opts),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}
