package listing

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DisplayPrice renders an integer price in the payment token's display
// unit, e.g. 1500000 with 6 token decimals renders to "1.5".
func DisplayPrice(price uint64, tokenDecimals int32) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(price), -tokenDecimals).String()
}
