package usecase

import "context"

type CatalogUC interface {
	RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*RegisterProductRes, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

type SalesUC interface {
	RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error)
	ListRecentSales(ctx context.Context, limit int) ([]SaleInfo, error)
}

type PurchasesUC interface {
	RecordPurchase(ctx context.Context, req *RecordPurchaseReq) (*StockChangeRes, error)
	ListRecentPurchases(ctx context.Context, limit int) ([]PurchaseInfo, error)
}

type StockUC interface {
	RecordProduction(ctx context.Context, req *RecordProductionReq) (*StockChangeRes, error)
	RecordWastage(ctx context.Context, req *RecordWastageReq) (*StockChangeRes, error)
	AdjustQuantity(ctx context.Context, productID, delta int64) (*StockChangeRes, error)
}

type DashboardUC interface {
	Summary(ctx context.Context, req *DashboardReq) (*DashboardSummary, error)
}
