package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_GiftSet(t *testing.T) {
	tests := []struct {
		name    string
		qty     int64
		display string
		tooltip string
	}{
		{name: "zero quantity", qty: 0, display: "0 pcs", tooltip: "0 pcs"},
		{name: "less than one carton", qty: 10, display: "10 pcs", tooltip: "10 pcs"},
		{name: "exactly one carton", qty: 24, display: "1 ctn", tooltip: "24 pcs (1 cartons)"},
		{name: "carton with remainder", qty: 30, display: "1 ctn + 6 pcs", tooltip: "30 pcs (1 cartons + 6 pcs)"},
		{name: "several cartons", qty: 72, display: "3 ctn", tooltip: "72 pcs (3 cartons)"},
		{name: "several cartons with remainder", qty: 100, display: "4 ctn + 4 pcs", tooltip: "100 pcs (4 cartons + 4 pcs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.qty, "Velvet Rose Gift Set")
			assert.Equal(t, tt.display, got.Display)
			assert.Equal(t, tt.tooltip, got.Tooltip)
		})
	}
}

func TestFormat_NonGiftSet(t *testing.T) {
	t.Run("regular product bypasses carton math", func(t *testing.T) {
		got := Format(30, "Plain Widget")
		assert.Equal(t, "30 pcs", got.Display)
		assert.Equal(t, "30 pcs", got.Tooltip)
	})

	t.Run("empty product name behaves like regular product", func(t *testing.T) {
		got := Format(48, "")
		assert.Equal(t, "48 pcs", got.Display)
		assert.Equal(t, "48 pcs", got.Tooltip)
	})

	t.Run("gift set match is case insensitive", func(t *testing.T) {
		got := Format(24, "AMBER OUD GIFT SET")
		assert.Equal(t, "1 ctn", got.Display)
	})
}
