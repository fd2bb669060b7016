// Package models defines the core domain models for Golfwager.
//
// # Rounds
//
// A Round is one group of 2-4 players playing 18 holes of a single side game.
// The game is a tagged variant: exactly one of
//   - SkinsGame: strokes per hole, a stake per skin in cents
//   - WolfGame: strokes per hole, rotating wolf, per-hole partner picks
//   - BBBGame: three award slots per hole (bingo, bango, bongo)
//
// so a BBB round can never carry wolf settings and callers never need to
// check which optional fields happen to be set.
//
// # Money
//
// All money is integer cents (int64). Nothing in this package or in the
// calculator uses floating point dollars.
//
// # Validation
//
// Round.Validate is the boundary check. The calculator assumes a validated
// round and treats missing per-hole input as "not decided yet", never as an
// error.
package models
