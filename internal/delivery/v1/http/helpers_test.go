package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"integer", "270", 27000, nil},
		{"two decimals", "258.92", 25892, nil},
		{"one decimal", "310.4", 31040, nil},
		{"trailing zeros", "265.00", 26500, nil},
		{"zero", "0", 0, nil},
		{"empty", "", 0, nil},
		{"garbage", "abc", 0, e.ErrInvalidPrice},
		{"negative", "-5", 0, e.ErrInvalidPrice},
		{"three decimals", "258.921", 0, e.ErrPricePrecision},
		{"absurdly large", "100000000001", 0, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.name == "empty" {
				require.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"bad request", e.ErrStatusBadRequest, http.StatusBadRequest},
		{"invalid quantity", e.ErrInvalidQuantity, http.StatusBadRequest},
		{"dashboard range", e.ErrDashboardRangeTooWide, http.StatusBadRequest},
		{"not found", e.ErrProductNotFound, http.StatusNotFound},
		{"insufficient stock", e.ErrInsufficientStock, http.StatusConflict},
		{"stock not adjusted", e.ErrStockNotAdjusted, http.StatusConflict},
		{"file too large", e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"unsupported media", e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"wrapped", e.Wrap("SalesUseCase.RecordSale", e.ErrInsufficientStock), http.StatusConflict},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestParseIDsParam(t *testing.T) {
	ids, err := parseIDsParam("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	_, err = parseIDsParam("")
	require.ErrorIs(t, err, e.ErrNoProducts)

	_, err = parseIDsParam("1,abc")
	require.ErrorIs(t, err, e.ErrStatusBadRequest)

	_, err = parseIDsParam("0")
	require.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestParseOptionalDate(t *testing.T) {
	got, err := parseOptionalDate("2026-08-25")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 25, got.Day())

	_, err = parseOptionalDate("25.08.2026")
	require.ErrorIs(t, err, e.ErrInvalidDate)

	got, err = parseOptionalDate("")
	require.NoError(t, err)
	assert.False(t, got.IsZero())
}
