package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "$0"},
		{in: "220", want: "$220"},
		{in: "1234", want: "$1,234"},
		{in: "89.4", want: "$89"},
		{in: "89.5", want: "$90"},
		{in: "1234567.5", want: "$1,234,568"},
		{in: "-5", want: "-$5"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}
