package pricing

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Таблица пресетов поставляется вместе с бинарём и неизменяема в рантайме.
// Ключи правил сохраняются ровно в том виде, в каком они заведены в таблице:
// форматирование у части ключей без дробной части, у части — с двумя знаками,
// и на это завязана логика подбора ключа в Resolve.
//
//go:embed price_presets.json
var presetsRaw []byte

// PriceRule описывает торговую схему и скидку для конкретной ценовой точки.
type PriceRule struct {
	TradeScheme        string          `json:"trade_scheme"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// ProductPreset — справочная цена товара и его правила по ценовым точкам.
type ProductPreset struct {
	BasePrice decimal.Decimal      `json:"base_price"`
	Rules     map[string]PriceRule `json:"price_rules"`
}

func loadPresets(raw []byte) (map[string]ProductPreset, error) {
	presets := make(map[string]ProductPreset)
	if err := json.Unmarshal(raw, &presets); err != nil {
		return nil, fmt.Errorf("pricing: malformed preset table: %w", err)
	}

	return presets, nil
}
