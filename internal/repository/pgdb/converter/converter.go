//go:generate goverter gen github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// SaleConverter преобразует сущности Sale между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type SaleConverter interface {
	ToModel(entity *domain.Sale) *SaleModel
	ToEntity(model *SaleModel) *domain.Sale
}

// PurchaseConverter преобразует сущности Purchase между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type PurchaseConverter interface {
	ToModel(entity *domain.Purchase) *PurchaseModel
	ToEntity(model *PurchaseModel) *domain.Purchase
}

// ProductionConverter преобразует сущности ProductionBatch между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type ProductionConverter interface {
	ToModel(entity *domain.ProductionBatch) *ProductionModel
	ToEntity(model *ProductionModel) *domain.ProductionBatch
}

// WastageConverter преобразует сущности Wastage между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type WastageConverter interface {
	ToModel(entity *domain.Wastage) *WastageModel
	ToEntity(model *WastageModel) *domain.Wastage
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
