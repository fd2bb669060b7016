package sqlite

import "database/sql"

// schema sets up the database on startup.
// Child tables cascade on round deletion.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rounds (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    variant TEXT NOT NULL,
    stake_cents INTEGER NOT NULL DEFAULT 0,
    points_per_hole INTEGER NOT NULL DEFAULT 0,
    lone_multiplier INTEGER NOT NULL DEFAULT 0,
    starting_index INTEGER NOT NULL DEFAULT 0,
    cents_per_point INTEGER NOT NULL DEFAULT 0,
    locked INTEGER NOT NULL DEFAULT 0,
    owner_id TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS round_players (
    round_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    player_id TEXT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (round_id, player_id),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS strokes (
    round_id TEXT NOT NULL,
    hole INTEGER NOT NULL,
    player_id TEXT NOT NULL,
    strokes INTEGER NOT NULL,
    PRIMARY KEY (round_id, hole, player_id),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS wolf_partners (
    round_id TEXT NOT NULL,
    hole INTEGER NOT NULL,
    partner_id TEXT NOT NULL,
    PRIMARY KEY (round_id, hole),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS hole_awards (
    round_id TEXT NOT NULL,
    hole INTEGER NOT NULL,
    bingo TEXT,
    bango TEXT,
    bongo TEXT,
    PRIMARY KEY (round_id, hole),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS settlement_lines (
    round_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    from_player_id TEXT NOT NULL,
    to_player_id TEXT NOT NULL,
    amount_cents INTEGER NOT NULL CHECK (amount_cents > 0),
    PRIMARY KEY (round_id, position),
    FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_rounds_owner_id ON rounds(owner_id);
CREATE INDEX IF NOT EXISTS idx_round_players_round_id ON round_players(round_id);
CREATE INDEX IF NOT EXISTS idx_strokes_round_id ON strokes(round_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
