package calculator

// reconcileCents converts balances held in 1/divisor cents into whole cents.
//
// Each share is truncated toward zero. Whatever the truncation lost is handed
// to the largest-magnitude party (first in order on ties), so the result sums
// to exactly zero whenever scaled does.
func reconcileCents(order []string, scaled map[string]int64, divisor int64) NetBalances {
	net := make(NetBalances, len(scaled))
	if divisor <= 0 {
		divisor = 1
	}

	var sum int64
	for id, v := range scaled {
		net[id] = v / divisor
		sum += net[id]
	}
	if sum == 0 {
		return net
	}

	var target string
	var best int64 = -1
	for _, id := range settleOrder(order, net) {
		if mag := abs(net[id]); mag > best {
			target, best = id, mag
		}
	}
	net[target] -= sum
	return net
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
