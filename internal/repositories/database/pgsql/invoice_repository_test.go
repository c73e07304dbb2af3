package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		seq  int
		want string
	}{
		{"first of the year", 1, "INV-2026-0001"},
		{"pads to four digits", 42, "INV-2026-0042"},
		{"last four digit value", 9999, "INV-2026-9999"},
		{"grows past four digits", 10000, "INV-2026-10000"},
		{"keeps growing", 100001, "INV-2026-100001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatInvoiceNumber("INV-2026-", tt.seq))
		})
	}
}
