package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already two decimals", "100.25", "100.25"},
		{"rounds down below half", "100.254", "100.25"},
		{"rounds up above half", "100.256", "100.26"},
		{"exact half rounds up", "100.255", "100.26"},
		{"half from float noise", "100.2549999999", "100.26"},
		{"negative half rounds away from zero", "-100.255", "-100.26"},
		{"negative below half", "-100.254", "-100.25"},
		{"zero", "0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundHalfUp(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestRoundHalfUpIdempotent(t *testing.T) {
	// Rounding an already rounded value must not move it again.
	v := RoundHalfUp(decimal.RequireFromString("99.995"))
	assert.Equal(t, "100.00", v.StringFixed(2))
	assert.Equal(t, "100.00", RoundHalfUp(v).StringFixed(2))
}

func TestRoundDown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"floors fractional cents", "50.789", "50.78"},
		{"keeps exact cents", "50.78", "50.78"},
		{"boundary value survives epsilon", "50.7799999999", "50.78"},
		{"below one cent snaps to zero", "0.009", "0.00"},
		{"negative below one cent snaps to zero", "-0.009", "0.00"},
		{"negative floors toward negative infinity", "-50.781", "-50.79"},
		{"zero", "0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundDown(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1234.50", Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00", Format(decimal.Zero))
	assert.Equal(t, "-7.10", Format(decimal.RequireFromString("-7.1")))
}
