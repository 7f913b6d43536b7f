package http

import (
	_ "github.com/DRSN-tech/inventory-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	salesUC usecase.SalesUC,
	purchasesUC usecase.PurchasesUC,
	stockUC usecase.StockUC,
	dashboardUC usecase.DashboardUC,
	resolver usecase.PriceRuleResolver,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerSaleRoutes(v1, NewSaleHandler(salesUC, r.logger))
		registerPurchaseRoutes(v1, NewPurchaseHandler(purchasesUC, r.logger))
		registerStockRoutes(v1, NewStockHandler(stockUC, r.logger))
		registerDashboardRoutes(v1, NewDashboardHandler(dashboardUC, r.logger))
		registerPricingRoutes(v1, NewPricingHandler(resolver, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.registerNewProduct)
		pr.Get("/", prHandler.getProductsInfo)
	})
}

func registerSaleRoutes(router chi.Router, slHandler *SaleHandler) {
	router.Route("/sales", func(sl chi.Router) {
		sl.Post("/", slHandler.recordSale)
		sl.Get("/", slHandler.listSales)
	})
}

func registerPurchaseRoutes(router chi.Router, puHandler *PurchaseHandler) {
	router.Route("/purchases", func(pu chi.Router) {
		pu.Post("/", puHandler.recordPurchase)
		pu.Get("/", puHandler.listPurchases)
	})
}

func registerStockRoutes(router chi.Router, stHandler *StockHandler) {
	router.Post("/production", stHandler.recordProduction)
	router.Post("/wastages", stHandler.recordWastage)
}

func registerDashboardRoutes(router chi.Router, dbHandler *DashboardHandler) {
	router.Get("/dashboard", dbHandler.getSummary)
}

func registerPricingRoutes(router chi.Router, prHandler *PricingHandler) {
	router.Get("/pricing/resolve", prHandler.resolvePriceRule)
	router.Get("/quantity/format", prHandler.formatQuantity)
}
