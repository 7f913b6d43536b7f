package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// PurchasesUseCase реализует бизнес-логику регистрации приходов.
type PurchasesUseCase struct {
	purchaseRepo PurchaseRepository
	productRepo  ProductRepository
	outboxRepo   OutboxRepository
	dbPool       transaction.Transactional
	producer     MessageProducer
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewPurchasesUC(
	purchaseRepo PurchaseRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	producer MessageProducer,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *PurchasesUseCase {
	return &PurchasesUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		outboxRepo:   outboxRepo,
		dbPool:       dbPool,
		producer:     producer,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// RecordPurchase регистрирует приход: запись прихода, увеличение остатка
// через update_product_quantity и событие в outbox — в одной транзакции.
func (p *PurchasesUseCase) RecordPurchase(ctx context.Context, req *RecordPurchaseReq) (*StockChangeRes, error) {
	const op = "PurchasesUseCase.RecordPurchase"

	var err error
	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}
	if req.UnitCost <= 0 {
		return nil, e.Wrap(op, e.ErrPriceMustBePositive)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if _, err = p.purchaseRepo.Create(ctx, domain.NewPurchase(req.ProductID, req.Quantity, req.UnitCost, req.PurchasedAt)); err != nil {
		return nil, e.Wrap(op, err)
	}

	newQty, err := p.productRepo.AdjustQuantity(ctx, req.ProductID, req.Quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = appendStockMovement(ctx, p.outboxRepo, p.producer, StockPurchased, req.ProductID, req.Quantity, newQty, req.PurchasedAt); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCaches(ctx, req.ProductID)

	return NewStockChangeRes(req.ProductID, newQty), nil
}

// ListRecentPurchases возвращает последние приходы, новые первыми.
func (p *PurchasesUseCase) ListRecentPurchases(ctx context.Context, limit int) ([]PurchaseInfo, error) {
	const op = "PurchasesUseCase.ListRecentPurchases"

	purchases, err := p.purchaseRepo.ListRecent(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return purchases, nil
}

func (p *PurchasesUseCase) invalidateCaches(ctx context.Context, productID int64) {
	const op = "PurchasesUseCase.invalidateCaches"

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{productID}); err != nil {
		p.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}
	if err := p.cacheRepo.DeleteDashboard(ctx); err != nil {
		p.logger.Warnf("Failed to invalidate dashboard cache: %v", e.Wrap(op, err))
	}
}
