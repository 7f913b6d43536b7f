package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type SaleHandler struct {
	salesUC usecase.SalesUC
	logger  logger.Logger
}

func NewSaleHandler(salesUC usecase.SalesUC, logger logger.Logger) *SaleHandler {
	return &SaleHandler{salesUC: salesUC, logger: logger}
}

// recordSaleRequest — тело запроса на регистрацию продажи.
// Скидка задаётся в базисных пунктах; при её отсутствии подбирается
// по таблице пресетов цен.
type recordSaleRequest struct {
	ProductID  int64  `json:"product_id" validate:"required,gt=0"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
	UnitPrice  string `json:"unit_price" validate:"required"`
	DiscountBP *int64 `json:"discount_bp,omitempty" validate:"omitempty,gte=0,lte=10000"`
	SoldAt     string `json:"sold_at,omitempty"`
}

// recordSale
//
//	@Summary		Регистрация продажи
//	@Description	Фиксирует продажу, уменьшает остаток и публикует событие движения
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordSaleRequest	true	"Данные продажи"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/sales [post]
func (s *SaleHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	unitPrice, err := parsePriceToCents(req.UnitPrice)
	if err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	soldAt, err := parseOptionalDate(req.SoldAt)
	if err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := s.salesUC.RecordSale(r.Context(), &usecase.RecordSaleReq{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		UnitPrice:  unitPrice,
		DiscountBP: req.DiscountBP,
		SoldAt:     soldAt,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"sale_id":      res.Sale.ID,
		"discount_bp":  res.Sale.DiscountBP,
		"trade_scheme": res.Sale.TradeScheme,
		"total":        res.Sale.Total,
		"new_quantity": res.NewQuantity,
	})
}

// listSales
//
//	@Summary		Последние продажи
//	@Tags			sales
//	@Produce		json
//	@Param			limit	query		int	false	"Размер выборки (по умолчанию 20, максимум 100)"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/sales [get]
func (s *SaleHandler) listSales(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	sales, err := s.salesUC.ListRecentSales(r.Context(), limit)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"sales": sales,
	})
}
