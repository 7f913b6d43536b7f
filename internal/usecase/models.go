package usecase

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

// CATALOG USECASE

// AddNewProductReq — запрос на добавление нового товара.
type AddNewProductReq struct {
	Name         string
	CategoryName string
	Price        int64
	Images       []ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// RegisterProductRes — результат регистрации товара.
type RegisterProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

// GetProductsReq запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	CategoryName string
	Price        int64
	Quantity     int64
}

// ProductStock — остаток товара для сводки дашборда.
type ProductStock struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

// SALES / PURCHASES / STOCK USECASES

// RecordSaleReq — запрос на регистрацию продажи.
// DiscountBP == nil означает «скидка не указана»: тогда она подбирается
// по таблице пресетов цен.
type RecordSaleReq struct {
	ProductID  int64
	Quantity   int64
	UnitPrice  int64
	DiscountBP *int64
	SoldAt     time.Time
}

// RecordSaleRes — результат регистрации продажи.
type RecordSaleRes struct {
	Sale        *domain.Sale
	NewQuantity int64
}

// SaleInfo — продажа с названием товара для списков UI.
type SaleInfo struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	DiscountBP  int64     `json:"discount_bp"`
	TradeScheme string    `json:"trade_scheme,omitempty"`
	Total       int64     `json:"total"`
	SoldAt      time.Time `json:"sold_at"`
}

// RecordPurchaseReq — запрос на регистрацию прихода.
type RecordPurchaseReq struct {
	ProductID   int64
	Quantity    int64
	UnitCost    int64
	PurchasedAt time.Time
}

// PurchaseInfo — приход с названием товара для списков UI.
type PurchaseInfo struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitCost    int64     `json:"unit_cost"`
	TotalCost   int64     `json:"total_cost"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// RecordProductionReq — запрос на регистрацию выпуска продукции.
type RecordProductionReq struct {
	ProductID  int64
	Quantity   int64
	Note       string
	ProducedAt time.Time
}

// RecordWastageReq — запрос на регистрацию списания.
type RecordWastageReq struct {
	ProductID int64
	Quantity  int64
	Reason    string
	WastedAt  time.Time
}

// StockChangeRes — результат операции, изменившей остаток товара.
type StockChangeRes struct {
	ProductID   int64
	NewQuantity int64
}

// DASHBOARD USECASE

// DashboardReq — запрос сводки за последние Days дней.
type DashboardReq struct {
	Days int
}

// DailyActivity — итоги одного дня.
type DailyActivity struct {
	Day            time.Time `json:"day"`
	SalesTotal     int64     `json:"sales_total"`
	PurchasesTotal int64     `json:"purchases_total"`
	UnitsSold      int64     `json:"units_sold"`
	UnitsPurchased int64     `json:"units_purchased"`
	UnitsProduced  int64     `json:"units_produced"`
	UnitsWasted    int64     `json:"units_wasted"`
}

// DashboardSummary — сводка активности для дашборда.
type DashboardSummary struct {
	Days        int             `json:"days"`
	GeneratedAt time.Time       `json:"generated_at"`
	Daily       []DailyActivity `json:"daily"`
	LowStock    []ProductStock  `json:"low_stock"`
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	StockPurchased OutboxEventType = "stock.purchased"
	StockSold      OutboxEventType = "stock.sold"
	StockProduced  OutboxEventType = "stock.produced"
	StockWasted    OutboxEventType = "stock.wasted"
	StockAdjusted  OutboxEventType = "stock.adjusted"
)

// OutboxEvent — запись транзакционного outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

// StockMovementReq — событие движения остатков для публикации в брокер.
type StockMovementReq struct {
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Delta       int64
	NewQuantity int64
	OccurredAt  time.Time
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// MAPPERS

func NewUpsertProductRes(product *domain.Product, noChanges bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product:   product,
		NoChanges: noChanges,
	}
}

// UpsertProductRes — результат идемпотентного upsert товара в репозитории.
type UpsertProductRes struct {
	Product   *domain.Product
	NoChanges bool
}

func NewAddNewProductReq(name string, category string, price int64, images []ProductImage) *AddNewProductReq {
	return &AddNewProductReq{
		Name:         name,
		CategoryName: category,
		Price:        price,
		Images:       images,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(pr []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewStockChangeRes(productID, newQuantity int64) *StockChangeRes {
	return &StockChangeRes{
		ProductID:   productID,
		NewQuantity: newQuantity,
	}
}
