package domain

import "time"

// Sale описывает продажу товара.
// Скидка фиксируется в базисных пунктах (1% = 100 bp), чтобы не терять
// дробные проценты торговых схем.
type Sale struct {
	ID          int64
	ProductID   int64
	Quantity    int64
	UnitPrice   int64 // Цена за единицу в центах
	DiscountBP  int64 // Скидка в базисных пунктах
	TradeScheme string
	Total       int64 // Итог в центах после скидки
	SoldAt      time.Time
	CreatedAt   time.Time
}

func NewSale(productID, quantity, unitPrice, discountBP int64, tradeScheme string, total int64, soldAt time.Time) *Sale {
	return &Sale{
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		DiscountBP:  discountBP,
		TradeScheme: tradeScheme,
		Total:       total,
		SoldAt:      soldAt,
	}
}
