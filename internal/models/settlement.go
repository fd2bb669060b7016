package models

// SettlementLine is one directed payment instruction produced by netting.
type SettlementLine struct {
	// FromPlayerID is the debtor who pays.
	FromPlayerID string

	// ToPlayerID is the creditor who receives.
	ToPlayerID string

	// AmountCents is always positive.
	AmountCents int64
}
