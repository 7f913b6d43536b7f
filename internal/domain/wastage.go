package domain

import "time"

// Wastage описывает списание товара (брак, порча, истёкший срок).
type Wastage struct {
	ID        int64
	ProductID int64
	Quantity  int64
	Reason    string
	WastedAt  time.Time
	CreatedAt time.Time
}

func NewWastage(productID, quantity int64, reason string, wastedAt time.Time) *Wastage {
	return &Wastage{
		ProductID: productID,
		Quantity:  quantity,
		Reason:    reason,
		WastedAt:  wastedAt,
	}
}
