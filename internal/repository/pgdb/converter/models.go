package converter

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	Price      int64      `db:"price"`
	CategoryID int64      `db:"category_id"`
	Quantity   int64      `db:"quantity"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
	IsArchived bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
	IsActive  bool       `db:"is_active"`
}

// SaleModel представляет запись таблицы sales в PostgreSQL.
type SaleModel struct {
	ID          int64     `db:"id"`
	ProductID   int64     `db:"product_id"`
	Quantity    int64     `db:"quantity"`
	UnitPrice   int64     `db:"unit_price"`
	DiscountBP  int64     `db:"discount_bp"`
	TradeScheme string    `db:"trade_scheme"`
	Total       int64     `db:"total"`
	SoldAt      time.Time `db:"sold_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// PurchaseModel представляет запись таблицы purchases в PostgreSQL.
type PurchaseModel struct {
	ID          int64     `db:"id"`
	ProductID   int64     `db:"product_id"`
	Quantity    int64     `db:"quantity"`
	UnitCost    int64     `db:"unit_cost"`
	TotalCost   int64     `db:"total_cost"`
	PurchasedAt time.Time `db:"purchased_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// ProductionModel представляет запись таблицы production_batches в PostgreSQL.
type ProductionModel struct {
	ID         int64     `db:"id"`
	ProductID  int64     `db:"product_id"`
	Quantity   int64     `db:"quantity"`
	Note       string    `db:"note"`
	ProducedAt time.Time `db:"produced_at"`
	CreatedAt  time.Time `db:"created_at"`
}

// WastageModel представляет запись таблицы wastages в PostgreSQL.
type WastageModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	Quantity  int64     `db:"quantity"`
	Reason    string    `db:"reason"`
	WastedAt  time.Time `db:"wasted_at"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	ProductID   int64                   `db:"product_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
