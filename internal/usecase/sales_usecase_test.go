package usecase

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/inventory-backend/internal/pricing"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	rule *pricing.ResolvedRule
}

func (s *stubResolver) Resolve(string, decimal.Decimal) *pricing.ResolvedRule {
	return s.rule
}

func TestSaleTotal(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int64
		unitPrice  int64
		discountBP int64
		want       int64
	}{
		{"no discount", 3, 27000, 0, 81000},
		{"whole percent", 2, 27000, 700, 50220},
		{"fractional percent", 1, 25892, 410, 24830},
		{"full discount", 5, 10000, 10000, 0},
		{"rounds to nearest cent", 1, 999, 3333, 666},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SaleTotal(tt.quantity, tt.unitPrice, tt.discountBP))
		})
	}
}

func TestResolveDiscount_ExplicitWins(t *testing.T) {
	uc := &SalesUseCase{resolver: &stubResolver{rule: &pricing.ResolvedRule{
		TradeScheme:        "wholesale",
		DiscountPercentage: decimal.NewFromInt(7),
	}}}

	explicit := int64(1500)
	bp, scheme := uc.resolveDiscount("Velvet Rose Gift Set", &RecordSaleReq{
		UnitPrice:  27000,
		DiscountBP: &explicit,
	})

	assert.Equal(t, int64(1500), bp)
	assert.Empty(t, scheme)
}

func TestResolveDiscount_FromResolver(t *testing.T) {
	uc := &SalesUseCase{resolver: &stubResolver{rule: &pricing.ResolvedRule{
		TradeScheme:        "retail-promo",
		DiscountPercentage: decimal.RequireFromString("4.1"),
	}}}

	bp, scheme := uc.resolveDiscount("Velvet Rose Gift Set", &RecordSaleReq{UnitPrice: 25892})

	assert.Equal(t, int64(410), bp)
	assert.Equal(t, "retail-promo", scheme)
}

func TestResolveDiscount_NoRule(t *testing.T) {
	uc := &SalesUseCase{resolver: &stubResolver{}}

	bp, scheme := uc.resolveDiscount("Unknown Product", &RecordSaleReq{UnitPrice: 12345})

	assert.Zero(t, bp)
	assert.Empty(t, scheme)
}

func TestValidateSale(t *testing.T) {
	uc := &SalesUseCase{}
	badBP := int64(10001)
	negBP := int64(-1)

	tests := []struct {
		name    string
		req     *RecordSaleReq
		wantErr error
	}{
		{"valid", &RecordSaleReq{Quantity: 1, UnitPrice: 100}, nil},
		{"zero quantity", &RecordSaleReq{Quantity: 0, UnitPrice: 100}, e.ErrInvalidQuantity},
		{"negative quantity", &RecordSaleReq{Quantity: -5, UnitPrice: 100}, e.ErrInvalidQuantity},
		{"zero price", &RecordSaleReq{Quantity: 1, UnitPrice: 0}, e.ErrPriceMustBePositive},
		{"discount above 100%", &RecordSaleReq{Quantity: 1, UnitPrice: 100, DiscountBP: &badBP}, e.ErrStatusBadRequest},
		{"negative discount", &RecordSaleReq{Quantity: 1, UnitPrice: 100, DiscountBP: &negBP}, e.ErrStatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateSale(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 20, normalizeLimit(0))
	assert.Equal(t, 20, normalizeLimit(-3))
	assert.Equal(t, 50, normalizeLimit(50))
	assert.Equal(t, 100, normalizeLimit(250))
}
