package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ResolvedRule — правило из таблицы пресетов, дополненное справочной ценой товара.
type ResolvedRule struct {
	BasePrice          decimal.Decimal
	TradeScheme        string
	DiscountPercentage decimal.Decimal
}

// DiscountBP возвращает скидку в базисных пунктах (1% = 100 bp).
func (r *ResolvedRule) DiscountBP() int64 {
	return r.DiscountPercentage.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Resolver подбирает правило скидки по названию товара и введённой цене.
type Resolver struct {
	presets map[string]ProductPreset
}

// NewResolver создаёт резолвер поверх встроенной таблицы пресетов.
func NewResolver() (*Resolver, error) {
	presets, err := loadPresets(presetsRaw)
	if err != nil {
		return nil, err
	}

	return &Resolver{presets: presets}, nil
}

func newResolver(presets map[string]ProductPreset) *Resolver {
	return &Resolver{presets: presets}
}

// Resolve возвращает правило для точного (с учётом регистра) названия товара
// и введённой цены, либо nil, если товара нет в таблице или цена не совпала
// ни с одним ключом. Отсутствие совпадения — не ошибка.
//
// Цена пробуется двумя написаниями в строгом порядке: сначала без хвостовых
// нулей ("265"), затем с двумя знаками после запятой ("265.00"). Порядок
// важен: ключи в таблице отформатированы неоднородно, и ключ "270" не
// найдётся по написанию "270.00", а ключ "258.92" — по написанию "258.92"
// найдётся только вторым шагом для цены, введённой как "258.920".
func (r *Resolver) Resolve(productName string, enteredPrice decimal.Decimal) *ResolvedRule {
	preset, ok := r.presets[productName]
	if !ok {
		return nil
	}

	for _, key := range candidateKeys(enteredPrice) {
		rule, ok := preset.Rules[key]
		if !ok {
			continue
		}

		return &ResolvedRule{
			BasePrice:          preset.BasePrice,
			TradeScheme:        rule.TradeScheme,
			DiscountPercentage: rule.DiscountPercentage,
		}
	}

	return nil
}

// candidateKeys строит написания цены для поиска по таблице:
// простое (без хвостовых нулей) и с фиксированными двумя знаками.
func candidateKeys(price decimal.Decimal) []string {
	plain := trimTrailingZeros(price.String())
	fixed := price.StringFixed(2)

	if fixed == plain {
		return []string{plain}
	}

	return []string{plain, fixed}
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
