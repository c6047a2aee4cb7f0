package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ApplicationFee computes the platform's cut of a payment in minor currency
// units: round(total x percent / 100). An empty percent means no fee is
// configured. The result is always within [0, totalCents] so a misconfigured
// percentage can never produce a fee the provider would reject.
func ApplicationFee(totalCents int64, feePercent string) (int64, error) {
	if feePercent == "" {
		return 0, nil
	}

	percent, err := decimal.NewFromString(feePercent)
	if err != nil {
		return 0, fmt.Errorf("error parsing platform fee percent: [%s]", err)
	}

	total := decimal.NewFromInt(totalCents)
	fee := total.Mul(percent).Div(decimal.NewFromInt(100)).Round(0)

	if fee.IsNegative() {
		return 0, nil
	}
	if fee.GreaterThan(total) {
		return totalCents, nil
	}

	return fee.IntPart(), nil
}
