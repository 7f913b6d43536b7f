package domain

import "time"

// Product описывает товар каталога.
type Product struct {
	ID         int64
	Name       string
	Price      int64 // Цена хранится в центах
	CategoryID int64
	Quantity   int64 // Текущий остаток в штуках
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	IsArchived bool
}

func NewProduct(name string, price int64, categoryID int64) *Product {
	return &Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
	}
}
