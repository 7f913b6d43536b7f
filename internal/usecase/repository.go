package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
	// AdjustQuantity атомарно изменяет остаток через хранимую функцию
	// update_product_quantity и возвращает новый остаток.
	// Возвращает e.ErrInsufficientStock, если остаток ушёл бы в минус.
	AdjustQuantity(ctx context.Context, productID, delta int64) (int64, error)
	AddImages(ctx context.Context, productID int64, keys []string) error
	LowStock(ctx context.Context, threshold int64, limit int) ([]ProductStock, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]SaleInfo, error)
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	ListRecent(ctx context.Context, limit int) ([]PurchaseInfo, error)
}

type ProductionRepository interface {
	Create(ctx context.Context, batch *domain.ProductionBatch) (*domain.ProductionBatch, error)
}

type WastageRepository interface {
	Create(ctx context.Context, wastage *domain.Wastage) (*domain.Wastage, error)
}

type StatsRepository interface {
	// DailyActivity возвращает подневные итоги продаж, закупок, выпуска
	// и списаний за полуинтервал [from, to).
	DailyActivity(ctx context.Context, from, to time.Time) ([]DailyActivity, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
	GetDashboard(ctx context.Context, days int) (*DashboardSummary, error)
	SetDashboard(ctx context.Context, days int, summary *DashboardSummary) error
	DeleteDashboard(ctx context.Context) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
