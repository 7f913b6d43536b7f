package domain

import "time"

// ProductionBatch описывает выпуск готовой продукции на склад.
type ProductionBatch struct {
	ID         int64
	ProductID  int64
	Quantity   int64
	Note       string
	ProducedAt time.Time
	CreatedAt  time.Time
}

func NewProductionBatch(productID, quantity int64, note string, producedAt time.Time) *ProductionBatch {
	return &ProductionBatch{
		ProductID:  productID,
		Quantity:   quantity,
		Note:       note,
		ProducedAt: producedAt,
	}
}
