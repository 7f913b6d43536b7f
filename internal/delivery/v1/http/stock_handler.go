package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type StockHandler struct {
	stockUC usecase.StockUC
	logger  logger.Logger
}

func NewStockHandler(stockUC usecase.StockUC, logger logger.Logger) *StockHandler {
	return &StockHandler{stockUC: stockUC, logger: logger}
}

type recordProductionRequest struct {
	ProductID  int64  `json:"product_id" validate:"required,gt=0"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
	Note       string `json:"note,omitempty" validate:"max=500"`
	ProducedAt string `json:"produced_at,omitempty"`
}

type recordWastageRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,max=500"`
	WastedAt  string `json:"wasted_at,omitempty"`
}

// recordProduction
//
//	@Summary		Регистрация выпуска продукции
//	@Description	Фиксирует выпуск готовой продукции и увеличивает остаток
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordProductionRequest	true	"Данные выпуска"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/production [post]
func (s *StockHandler) recordProduction(w http.ResponseWriter, r *http.Request) {
	var req recordProductionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	producedAt, err := parseOptionalDate(req.ProducedAt)
	if err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := s.stockUC.RecordProduction(r.Context(), &usecase.RecordProductionReq{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Note:       req.Note,
		ProducedAt: producedAt,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product_id":   res.ProductID,
		"new_quantity": res.NewQuantity,
	})
}

// recordWastage
//
//	@Summary		Регистрация списания
//	@Description	Фиксирует списание (брак, порчу) и уменьшает остаток
//	@Tags			stock
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordWastageRequest	true	"Данные списания"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/wastages [post]
func (s *StockHandler) recordWastage(w http.ResponseWriter, r *http.Request) {
	var req recordWastageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	wastedAt, err := parseOptionalDate(req.WastedAt)
	if err != nil {
		s.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := s.stockUC.RecordWastage(r.Context(), &usecase.RecordWastageReq{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		WastedAt:  wastedAt,
	})
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product_id":   res.ProductID,
		"new_quantity": res.NewQuantity,
	})
}
