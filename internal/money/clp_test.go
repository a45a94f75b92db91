package money_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crtic/ptc-manager/internal/money"
)

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{1450000, "$1.450.000"},
		{48000000, "$48.000.000"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, money.FormatCLP(tc.amount))
	}
}

func TestFormatCLP_DropsFraction(t *testing.T) {
	require.Equal(t, "$1.500", money.FormatCLP(1500.4))
}
