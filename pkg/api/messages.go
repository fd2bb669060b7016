package api

// Player is one golfer in a round.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameSettings selects the variant and carries only that variant's settings.
type GameSettings struct {
	Variant string         `json:"variant"`
	Skins   *SkinsSettings `json:"skins,omitempty"`
	Wolf    *WolfSettings  `json:"wolf,omitempty"`
	BBB     *BBBSettings   `json:"bbb,omitempty"`
}

// Settings left nil take the server's preset for that variant. An explicit
// value, zero included, is used as sent.

type SkinsSettings struct {
	StakeCents *int64 `json:"stake_cents,omitempty"`
}

type WolfSettings struct {
	PointsPerHole  *int   `json:"points_per_hole,omitempty"`
	LoneMultiplier *int   `json:"lone_multiplier,omitempty"`
	StartingIndex  int    `json:"starting_index"`
	CentsPerPoint  *int64 `json:"cents_per_point,omitempty"`
}

type BBBSettings struct {
	CentsPerPoint *int64 `json:"cents_per_point,omitempty"`
}

// Awards names the bingo, bango and bongo winners of one hole. Empty = nobody.
type Awards struct {
	Bingo string `json:"bingo,omitempty"`
	Bango string `json:"bango,omitempty"`
	Bongo string `json:"bongo,omitempty"`
}

// HoleEntry is the raw input recorded for one hole.
type HoleEntry struct {
	Hole      int            `json:"hole"`
	Strokes   map[string]int `json:"strokes,omitempty"`
	PartnerID string         `json:"partner_id,omitempty"`
	Awards    *Awards        `json:"awards,omitempty"`
}

// Round is a full round snapshot.
type Round struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Players   []Player     `json:"players"`
	Game      GameSettings `json:"game"`
	Holes     []HoleEntry  `json:"holes,omitempty"`
	Locked    bool         `json:"locked"`
	OwnerID   string       `json:"owner_id"`
	CreatedAt int64        `json:"created_at"`
}

// RoundSummary is the list view of a round.
type RoundSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Variant     string `json:"variant"`
	PlayerCount int    `json:"player_count"`
	Locked      bool   `json:"locked"`
	CreatedAt   int64  `json:"created_at"`
}

// HoleResult is one hole as scored. Which fields are set depends on the variant.
type HoleResult struct {
	Hole    int  `json:"hole"`
	Decided bool `json:"decided"`

	// Skins
	Carry  int    `json:"carry,omitempty"`
	Winner string `json:"winner,omitempty"`
	Skins  int    `json:"skins,omitempty"`

	// Wolf
	Wolf     string         `json:"wolf,omitempty"`
	Partner  string         `json:"partner,omitempty"`
	Status   string         `json:"status,omitempty"`
	Deltas   map[string]int `json:"deltas,omitempty"`
	Absorbed int            `json:"absorbed,omitempty"`

	// BBB
	Awards *Awards `json:"awards,omitempty"`
}

// Standing is one player's running total.
type Standing struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Skins    int    `json:"skins,omitempty"`
	Points   int    `json:"points"`
}

// Scoreboard is the engine output for a round.
type Scoreboard struct {
	Variant     string       `json:"variant"`
	Holes       []HoleResult `json:"holes"`
	Standings   []Standing   `json:"standings"`
	CarryToNext int          `json:"carry_to_next,omitempty"`
	Through     int          `json:"through,omitempty"`
	Text        string       `json:"text"`
}

type Balance struct {
	PlayerID string `json:"player_id"`
	NetCents int64  `json:"net_cents"`
}

type SettlementLine struct {
	FromPlayerID string `json:"from_player_id"`
	ToPlayerID   string `json:"to_player_id"`
	AmountCents  int64  `json:"amount_cents"`
}

// Settlement is who pays whom for a round.
type Settlement struct {
	// Skipped is set when the game has no money configured.
	Skipped  bool             `json:"skipped"`
	Frozen   bool             `json:"frozen"`
	Balances []Balance        `json:"balances,omitempty"`
	Lines    []SettlementLine `json:"lines,omitempty"`
	Text     string           `json:"text"`
}

type CreateRoundRequest struct {
	Name    string       `json:"name,omitempty"`
	Players []Player     `json:"players"`
	Game    GameSettings `json:"game"`
}

type CreateRoundResponse struct {
	Round *Round `json:"round"`
}

type GetRoundRequest struct {
	RoundID string `json:"round_id"`
}

type GetRoundResponse struct {
	Round *Round `json:"round"`
}

type ListRoundsRequest struct{}

type ListRoundsResponse struct {
	Rounds []RoundSummary `json:"rounds"`
}

type DeleteRoundRequest struct {
	RoundID string `json:"round_id"`
}

type DeleteRoundResponse struct{}

type RecordStrokesRequest struct {
	RoundID string         `json:"round_id"`
	Hole    int            `json:"hole"`
	Strokes map[string]int `json:"strokes"`
}

type RecordStrokesResponse struct {
	Scoreboard *Scoreboard `json:"scoreboard"`
}

// SetWolfPartnerRequest picks the wolf's partner. Empty partner = lone wolf.
type SetWolfPartnerRequest struct {
	RoundID   string `json:"round_id"`
	Hole      int    `json:"hole"`
	PartnerID string `json:"partner_id,omitempty"`
}

type SetWolfPartnerResponse struct {
	Scoreboard *Scoreboard `json:"scoreboard"`
}

// RecordAwardsRequest records a BBB hole. Empty slots mean nobody won that award.
type RecordAwardsRequest struct {
	RoundID string `json:"round_id"`
	Hole    int    `json:"hole"`
	Bingo   string `json:"bingo,omitempty"`
	Bango   string `json:"bango,omitempty"`
	Bongo   string `json:"bongo,omitempty"`
}

type RecordAwardsResponse struct {
	Scoreboard *Scoreboard `json:"scoreboard"`
}

type ClearHoleRequest struct {
	RoundID string `json:"round_id"`
	Hole    int    `json:"hole"`
}

type ClearHoleResponse struct {
	Scoreboard *Scoreboard `json:"scoreboard"`
}

type LockRoundRequest struct {
	RoundID string `json:"round_id"`
}

type LockRoundResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type GetScoreboardRequest struct {
	RoundID string `json:"round_id"`
}

type GetScoreboardResponse struct {
	Scoreboard *Scoreboard `json:"scoreboard"`
}

type GetSettlementRequest struct {
	RoundID string `json:"round_id"`
}

type GetSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

// User is a scorekeeper account as seen on the wire.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}
