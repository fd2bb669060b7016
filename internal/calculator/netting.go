package calculator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mmynk/golfwager/internal/models"
)

// ErrUnbalanced is returned when net balances do not sum to zero.
var ErrUnbalanced = errors.New("net balances do not sum to zero")

// NetBalances maps player id to signed cents.
// Positive = owed money, Negative = owes money.
type NetBalances map[string]int64

// Sum returns the total of all balances. A settleable map sums to zero.
func (n NetBalances) Sum() int64 {
	var total int64
	for _, v := range n {
		total += v
	}
	return total
}

// party is one side of the greedy match with its remaining magnitude.
type party struct {
	id     string
	amount int64
}

// Net converts zero-summing balances into payment instructions.
//
// Algorithm:
//   - Split players into creditors (largest credit first) and debtors
//     (largest debt first); zero balances are dropped
//   - Greedy: match the current largest debtor with the current largest
//     creditor for min(credit, debt), then advance past whoever hits zero
//   - Stop when either side runs out
//
// At most creditors+debtors-1 lines are produced and they reconcile every
// balance exactly. Greedy matching does not always find the fewest payments
// (the exact minimum is NP-hard); it is good enough for four players.
//
// order fixes the tie-break between equal balances so the output is
// deterministic. Players present in balances but missing from order are
// appended by id.
func Net(order []string, balances NetBalances) ([]models.SettlementLine, error) {
	if sum := balances.Sum(); sum != 0 {
		return nil, fmt.Errorf("%w: off by %d cents", ErrUnbalanced, sum)
	}

	var creditors, debtors []party
	for _, id := range settleOrder(order, balances) {
		switch net := balances[id]; {
		case net > 0:
			creditors = append(creditors, party{id: id, amount: net})
		case net < 0:
			debtors = append(debtors, party{id: id, amount: -net})
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })

	var lines []models.SettlementLine
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := min(debtor.amount, creditor.amount)
		lines = append(lines, models.SettlementLine{
			FromPlayerID: debtor.id,
			ToPlayerID:   creditor.id,
			AmountCents:  amount,
		})

		debtor.amount -= amount
		creditor.amount -= amount
		if debtor.amount == 0 {
			i++
		}
		if creditor.amount == 0 {
			j++
		}
	}

	return lines, nil
}

// settleOrder lists every id in balances, following order first.
func settleOrder(order []string, balances NetBalances) []string {
	seen := make(map[string]bool, len(balances))
	out := make([]string, 0, len(balances))
	for _, id := range order {
		if _, ok := balances[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	var extra []string
	for id := range balances {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
