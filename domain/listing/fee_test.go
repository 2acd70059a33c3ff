package listing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeFee(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name       string
		totalPrice uint64
		want       uint64
	}{
		{name: "zero", totalPrice: 0, want: 0},
		{name: "below one unit", totalPrice: 39, want: 0},
		{name: "exactly one unit", totalPrice: 40, want: 1},
		{name: "truncates toward zero", totalPrice: 79, want: 1},
		{name: "reference scenario", totalPrice: 100_000_000, want: 2_500_000},
		{name: "large total does not overflow", totalPrice: math.MaxUint64, want: math.MaxUint64 / 40},
	}

	for _, c := range cases {
		req.Equal(c.want, ComputeFee(c.totalPrice), c.name)
	}
}

func TestSplitPrice(t *testing.T) {
	req := require.New(t)

	for _, totalPrice := range []uint64{0, 1, 39, 40, 9999, 10000, 10001, 100_000_000, math.MaxUint64} {
		sellerAmount, fee := SplitPrice(totalPrice)
		req.Equal(totalPrice, sellerAmount+fee)
		req.LessOrEqual(fee, totalPrice)
	}

	sellerAmount, fee := SplitPrice(100_000_000)
	req.Equal(uint64(97_500_000), sellerAmount)
	req.Equal(uint64(2_500_000), fee)
}
