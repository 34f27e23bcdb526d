package pricefmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

const nativeTokenDecimals = 18

// WeiToDisplay converts a base-unit (wei) integer string into the
// human-readable native-token amount, e.g. "1500000000000000000" -> "1.5".
func WeiToDisplay(wei string) (string, error) {
	d, err := decimal.NewFromString(wei)
	if err != nil {
		return "", xerrors.Errorf("parse wei amount %q: %w", wei, err)
	}
	return d.Shift(-nativeTokenDecimals).String(), nil
}

// WeiToDisplayOrZero is WeiToDisplay with malformed input degraded to "0",
// for projection paths that must not fail on a single bad field.
func WeiToDisplayOrZero(wei string) string {
	s, err := WeiToDisplay(wei)
	if err != nil {
		return "0"
	}
	return s
}
