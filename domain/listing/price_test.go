package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayPrice(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name     string
		price    uint64
		decimals int32
		want     string
	}{
		{name: "zero", price: 0, decimals: 6, want: "0"},
		{name: "whole unit", price: 1_000_000, decimals: 6, want: "1"},
		{name: "fractional", price: 1_500_000, decimals: 6, want: "1.5"},
		{name: "sub unit", price: 1, decimals: 6, want: "0.000001"},
		{name: "no decimals", price: 42, decimals: 0, want: "42"},
	}

	for _, c := range cases {
		req.Equal(c.want, DisplayPrice(c.price, c.decimals), c.name)
	}
}
