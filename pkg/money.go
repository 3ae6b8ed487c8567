package pkg

import "github.com/shopspring/decimal"

// ToMinorUnits converts a major-unit amount (e.g. 15.5 USD) to integer cents.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts integer cents to a major-unit amount.
func FromMinorUnits(minor int64) float64 {
	f, _ := decimal.New(minor, -2).Float64()
	return f
}
