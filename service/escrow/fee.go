package escrow

import (
	"github.com/QuangTung97/crowd-escrow/pkg/safemath"
)

// ComputeFee splits a campaign balance into the platform fee, rounded down, and the creator amount
func ComputeFee(balance uint64, numerator uint64, denominator uint64) (fee uint64, creatorAmount uint64, err error) {
	scaled, err := safemath.Mul(balance, numerator)
	if err != nil {
		return 0, 0, ErrAmountOverflow
	}
	fee, err = safemath.Div(scaled, denominator)
	if err != nil {
		return 0, 0, ErrAmountOverflow
	}
	creatorAmount, err = safemath.Sub(balance, fee)
	if err != nil {
		return 0, 0, ErrAmountOverflow
	}
	return fee, creatorAmount, nil
}
