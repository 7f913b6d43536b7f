// Package quantity отвечает за отображение количества товара.
// Для подарочных наборов количество раскладывается на коробки и штуки.
package quantity

import (
	"fmt"
	"strings"
)

// UnitsPerCarton — количество штук в одной коробке подарочных наборов.
const UnitsPerCarton = 24

// Formatted — готовые строки количества для UI: короткая и для подсказки.
type Formatted struct {
	Display string
	Tooltip string
}

// Format раскладывает количество на коробки и штуки для подарочных наборов
// (название содержит "gift set" без учёта регистра); остальные товары
// отображаются как простое количество штук. Отрицательные количества
// не валидируются — это предусловие вызывающей стороны.
func Format(qty int64, productName string) Formatted {
	if !isGiftSet(productName) {
		plain := fmt.Sprintf("%d pcs", qty)
		return Formatted{Display: plain, Tooltip: plain}
	}

	cartons := qty / UnitsPerCarton
	pieces := qty % UnitsPerCarton

	if cartons == 0 {
		plain := fmt.Sprintf("%d pcs", qty)
		return Formatted{Display: plain, Tooltip: plain}
	}

	var display string
	if pieces == 0 {
		display = fmt.Sprintf("%d ctn", cartons)
	} else {
		display = fmt.Sprintf("%d ctn + %d pcs", cartons, pieces)
	}

	tooltip := fmt.Sprintf("%d pcs (%d cartons", qty, cartons)
	if pieces > 0 {
		tooltip += fmt.Sprintf(" + %d pcs", pieces)
	}
	tooltip += ")"

	return Formatted{Display: display, Tooltip: tooltip}
}

func isGiftSet(productName string) bool {
	return strings.Contains(strings.ToLower(productName), "gift set")
}
