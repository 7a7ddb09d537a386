package transactionvalidator

import "math"

// amountTotal sums amounts without wrapping around. Once the sum leaves the
// int64 range it is saturated to the bound it crossed and stays there.
type amountTotal struct {
	sum        int64
	overflowed bool
}

func (total *amountTotal) add(amount int64) {
	if total.overflowed {
		return
	}
	if amount > 0 && total.sum > math.MaxInt64-amount {
		total.sum = math.MaxInt64
		total.overflowed = true
		return
	}
	if amount < 0 && total.sum < math.MinInt64-amount {
		total.sum = math.MinInt64
		total.overflowed = true
		return
	}
	total.sum += amount
}
