package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type PurchaseHandler struct {
	purchasesUC usecase.PurchasesUC
	logger      logger.Logger
}

func NewPurchaseHandler(purchasesUC usecase.PurchasesUC, logger logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchasesUC: purchasesUC, logger: logger}
}

type recordPurchaseRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	UnitCost    string `json:"unit_cost" validate:"required"`
	PurchasedAt string `json:"purchased_at,omitempty"`
}

// recordPurchase
//
//	@Summary		Регистрация прихода
//	@Description	Фиксирует закупку и увеличивает остаток товара
//	@Tags			purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recordPurchaseRequest	true	"Данные прихода"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/purchases [post]
func (p *PurchaseHandler) recordPurchase(w http.ResponseWriter, r *http.Request) {
	var req recordPurchaseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	unitCost, err := parsePriceToCents(req.UnitCost)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	purchasedAt, err := parseOptionalDate(req.PurchasedAt)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.purchasesUC.RecordPurchase(r.Context(), &usecase.RecordPurchaseReq{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitCost:    unitCost,
		PurchasedAt: purchasedAt,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product_id":   res.ProductID,
		"new_quantity": res.NewQuantity,
	})
}

// listPurchases
//
//	@Summary		Последние приходы
//	@Tags			purchases
//	@Produce		json
//	@Param			limit	query		int	false	"Размер выборки (по умолчанию 20, максимум 100)"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/purchases [get]
func (p *PurchaseHandler) listPurchases(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	purchases, err := p.purchasesUC.ListRecentPurchases(r.Context(), limit)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"purchases": purchases,
	})
}
