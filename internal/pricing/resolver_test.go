package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	t.Run("every stored key resolves under both spellings", func(t *testing.T) {
		presets, err := loadPresets(presetsRaw)
		require.NoError(t, err)
		require.NotEmpty(t, presets)

		for name, preset := range presets {
			for key, rule := range preset.Rules {
				price := decimal.RequireFromString(key)

				for _, spelling := range []string{price.String(), price.StringFixed(2)} {
					entered := decimal.RequireFromString(spelling)

					got := r.Resolve(name, entered)
					require.NotNilf(t, got, "product %q key %q spelling %q", name, key, spelling)
					assert.Equal(t, rule.TradeScheme, got.TradeScheme)
					assert.True(t, rule.DiscountPercentage.Equal(got.DiscountPercentage))
					assert.True(t, preset.BasePrice.Equal(got.BasePrice))
				}
			}
		}
	})

	t.Run("unknown product returns nil", func(t *testing.T) {
		got := r.Resolve("Plain Widget", decimal.NewFromInt(270))
		assert.Nil(t, got)
	})

	t.Run("product match is case sensitive", func(t *testing.T) {
		got := r.Resolve("velvet rose gift set", decimal.NewFromInt(270))
		assert.Nil(t, got)
	})

	t.Run("known product with price not in table returns nil", func(t *testing.T) {
		got := r.Resolve("Velvet Rose Gift Set", decimal.NewFromInt(999))
		assert.Nil(t, got)
	})

	t.Run("unpadded key matches a price entered with decimals", func(t *testing.T) {
		// Ключ хранится как "270", пользователь ввёл 270.00.
		got := r.Resolve("Velvet Rose Gift Set", decimal.RequireFromString("270.00"))
		require.NotNil(t, got)
		assert.Equal(t, "12+1", got.TradeScheme)
		assert.True(t, got.DiscountPercentage.IsZero())
	})

	t.Run("two decimal key matches a whole price only via padded spelling", func(t *testing.T) {
		// Ключ хранится как "310.40": простое написание даёт "310.4",
		// попадание обеспечивает второй кандидат со StringFixed(2).
		got := r.Resolve("Amber Oud Gift Set", decimal.RequireFromString("310.4"))
		require.NotNil(t, got)
		assert.Equal(t, "24+2", got.TradeScheme)
	})
}

func TestResolver_OrderOfCandidates(t *testing.T) {
	// Таблица, в которой оба написания присутствуют как разные ключи:
	// простое написание обязано побеждать.
	presets := map[string]ProductPreset{
		"Ambiguous": {
			BasePrice: decimal.NewFromInt(100),
			Rules: map[string]PriceRule{
				"95":    {TradeScheme: "plain", DiscountPercentage: decimal.NewFromInt(5)},
				"95.00": {TradeScheme: "padded", DiscountPercentage: decimal.NewFromInt(7)},
			},
		},
	}
	r := newResolver(presets)

	got := r.Resolve("Ambiguous", decimal.NewFromInt(95))
	require.NotNil(t, got)
	assert.Equal(t, "plain", got.TradeScheme)
}

func TestResolvedRule_DiscountBP(t *testing.T) {
	rule := &ResolvedRule{DiscountPercentage: decimal.RequireFromString("6.76")}
	assert.Equal(t, int64(676), rule.DiscountBP())

	rule = &ResolvedRule{DiscountPercentage: decimal.Zero}
	assert.Equal(t, int64(0), rule.DiscountBP())
}

func TestCandidateKeys(t *testing.T) {
	tests := []struct {
		price string
		want  []string
	}{
		{price: "265", want: []string{"265", "265.00"}},
		{price: "265.00", want: []string{"265", "265.00"}},
		{price: "258.92", want: []string{"258.92"}},
		{price: "225.6", want: []string{"225.6", "225.60"}},
		{price: "0", want: []string{"0", "0.00"}},
	}

	for _, tt := range tests {
		got := candidateKeys(decimal.RequireFromString(tt.price))
		assert.Equalf(t, tt.want, got, "price %s", tt.price)
	}
}
