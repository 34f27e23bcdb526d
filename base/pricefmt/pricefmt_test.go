package pricefmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeiToDisplay(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		wei string
		exp string
	}{
		{"0", "0"},
		{"1000000000000000000", "1"},
		{"1500000000000000000", "1.5"},
		{"10000000000000000", "0.01"},
		{"123", "0.000000000000000123"},
	}
	for _, c := range cases {
		got, err := WeiToDisplay(c.wei)
		req.NoError(err)
		req.Equal(c.exp, got)
	}

	_, err := WeiToDisplay("not-a-number")
	req.Error(err)

	req.Equal("0", WeiToDisplayOrZero("garbage"))
	req.Equal("2.5", WeiToDisplayOrZero("2500000000000000000"))
}
