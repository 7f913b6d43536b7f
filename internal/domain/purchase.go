package domain

import "time"

// Purchase описывает приход товара от поставщика.
type Purchase struct {
	ID          int64
	ProductID   int64
	Quantity    int64
	UnitCost    int64 // Закупочная цена за единицу в центах
	TotalCost   int64
	PurchasedAt time.Time
	CreatedAt   time.Time
}

func NewPurchase(productID, quantity, unitCost int64, purchasedAt time.Time) *Purchase {
	return &Purchase{
		ProductID:   productID,
		Quantity:    quantity,
		UnitCost:    unitCost,
		TotalCost:   quantity * unitCost,
		PurchasedAt: purchasedAt,
	}
}
