package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/quantity"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// PricingHandler отдаёт подбор скидки и форматирование остатков для UI форм,
// чтобы фронт показывал подставленную скидку до отправки продажи.
type PricingHandler struct {
	resolver usecase.PriceRuleResolver
	logger   logger.Logger
}

func NewPricingHandler(resolver usecase.PriceRuleResolver, logger logger.Logger) *PricingHandler {
	return &PricingHandler{resolver: resolver, logger: logger}
}

// resolvePriceRule
//
//	@Summary		Подбор правила скидки
//	@Description	Ищет правило в таблице пресетов по названию товара и введённой цене
//	@Tags			pricing
//	@Produce		json
//	@Param			product	query		string	true	"Точное название товара"
//	@Param			price	query		string	true	"Введённая цена, например 258.92"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Router			/pricing/resolve [get]
func (p *PricingHandler) resolvePriceRule(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	priceStr := r.URL.Query().Get("price")

	if product == "" || priceStr == "" {
		p.logger.Warnf("%d: product=%q price=%q", http.StatusBadRequest, product, priceStr)
		WriteError(w, e.ErrMissingFields)
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.LessThan(decimal.Zero) {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, priceStr)
		WriteError(w, e.ErrInvalidPrice)
		return
	}

	rule := p.resolver.Resolve(product, price)
	if rule == nil {
		// Промах — не ошибка: форма просто не подставляет скидку
		WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"matched": false,
		})
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"matched":             true,
		"trade_scheme":        rule.TradeScheme,
		"discount_percentage": rule.DiscountPercentage.String(),
		"discount_bp":         rule.DiscountBP(),
		"base_price":          rule.BasePrice.String(),
	})
}

// formatQuantity
//
//	@Summary		Форматирование остатка
//	@Description	Возвращает отображение остатка: для подарочных наборов — в коробках по 24 штуки
//	@Tags			pricing
//	@Produce		json
//	@Param			product		query		string	true	"Название товара"
//	@Param			quantity	query		int		true	"Остаток в штуках"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	ErrorResponse
//	@Router			/quantity/format [get]
func (p *PricingHandler) formatQuantity(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")

	qty, err := parseIntQuery(r, "quantity", -1)
	if err != nil || qty < 0 {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, r.URL.Query().Get("quantity"))
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	formatted := quantity.Format(int64(qty), product)

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"display": formatted.Display,
		"tooltip": formatted.Tooltip,
	})
}
