package grpc

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/proto"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

// StockService — gRPC-интерфейс остатков для внутренних сервисов
// (кассовые интеграции, синхронизация складов).
type StockService struct {
	proto.UnimplementedStockServiceServer
	stockUC   usecase.StockUC
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewStockService(stockUC usecase.StockUC, catalogUC usecase.CatalogUC, logger logger.Logger) *StockService {
	return &StockService{stockUC: stockUC, catalogUC: catalogUC, logger: logger}
}

// UpdateProductQuantity выполняет ручную корректировку остатка на дельту любого знака.
func (g *StockService) UpdateProductQuantity(ctx context.Context, req *proto.UpdateQuantityRequest) (*proto.UpdateQuantityResponse, error) {
	const op = "grpc.UpdateProductQuantity"

	res, err := g.stockUC.AdjustQuantity(ctx, req.ProductId, req.Delta)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.UpdateQuantityResponse{
		ProductId:   res.ProductID,
		NewQuantity: res.NewQuantity,
	}, nil
}

func (g *StockService) GetProductsInfo(ctx context.Context, req *proto.ProductsInfoRequest) (*proto.ProductsInfoResponse, error) {
	const op = "grpc.GetProductsInfo"

	res, err := g.catalogUC.GetProductsInfo(ctx, usecase.NewGetProductsReq(req.Ids))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return &proto.ProductsInfoResponse{
		Products:         toArrGRPCProduct(res.Products),
		ProductsNotFound: res.NotFoundProducts,
	}, nil
}

func toGRPCProduct(pr *usecase.ProductInfo) *proto.ProductInfo {
	return &proto.ProductInfo{
		Id:       pr.ID,
		Name:     pr.Name,
		Category: pr.CategoryName,
		Price:    pr.Price,
		Quantity: pr.Quantity,
	}
}

func toArrGRPCProduct(prs []usecase.ProductInfo) []*proto.ProductInfo {
	res := make([]*proto.ProductInfo, len(prs))
	for i, p := range prs {
		res[i] = toGRPCProduct(&p)
	}

	return res
}
