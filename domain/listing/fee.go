package listing

import (
	"math/big"
)

const (
	// FeeRateBasisPoints is the fixed platform fee rate, 250 bps = 2.5%
	FeeRateBasisPoints = 250

	bpsDenominator = 10000
)

// ComputeFee returns floor(totalPrice * FeeRateBasisPoints / 10000).
// Truncation toward zero leaves the whole-unit remainder on the seller
// side. The big.Int intermediate keeps the product from overflowing
// uint64 for large totals.
func ComputeFee(totalPrice uint64) uint64 {
	fee := new(big.Int).SetUint64(totalPrice)
	fee.Mul(fee, big.NewInt(FeeRateBasisPoints))
	fee.Div(fee, big.NewInt(bpsDenominator))
	return fee.Uint64()
}

// SplitPrice splits a total into the seller proceeds and the platform
// fee. sellerAmount + fee always equals totalPrice.
func SplitPrice(totalPrice uint64) (sellerAmount, fee uint64) {
	fee = ComputeFee(totalPrice)
	return totalPrice - fee, fee
}
