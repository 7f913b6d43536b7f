package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/pricing"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PriceRuleResolver подбирает правило скидки по названию товара и цене.
type PriceRuleResolver interface {
	Resolve(productName string, enteredPrice decimal.Decimal) *pricing.ResolvedRule
}

// SalesUseCase реализует бизнес-логику регистрации продаж.
type SalesUseCase struct {
	saleRepo    SaleRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	resolver    PriceRuleResolver
	producer    MessageProducer
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewSalesUC(
	saleRepo SaleRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	resolver PriceRuleResolver,
	producer MessageProducer,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *SalesUseCase {
	return &SalesUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		resolver:    resolver,
		producer:    producer,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// RecordSale регистрирует продажу: скидка берётся из запроса, а при её
// отсутствии подбирается по таблице пресетов цен; остаток уменьшается
// атомарно, событие движения пишется в outbox в той же транзакции.
func (s *SalesUseCase) RecordSale(ctx context.Context, req *RecordSaleReq) (*RecordSaleRes, error) {
	const op = "SalesUseCase.RecordSale"

	var err error
	if err = s.validateSale(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	discountBP, tradeScheme := s.resolveDiscount(product.Name, req)

	sale := domain.NewSale(
		req.ProductID,
		req.Quantity,
		req.UnitPrice,
		discountBP,
		tradeScheme,
		SaleTotal(req.Quantity, req.UnitPrice, discountBP),
		req.SoldAt,
	)

	sale, err = s.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	newQty, err := s.productRepo.AdjustQuantity(ctx, req.ProductID, -req.Quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = appendStockMovement(ctx, s.outboxRepo, s.producer, StockSold, req.ProductID, -req.Quantity, newQty, req.SoldAt); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.invalidateCaches(ctx, req.ProductID)

	return &RecordSaleRes{Sale: sale, NewQuantity: newQty}, nil
}

// ListRecentSales возвращает последние продажи, новые первыми.
func (s *SalesUseCase) ListRecentSales(ctx context.Context, limit int) ([]SaleInfo, error) {
	const op = "SalesUseCase.ListRecentSales"

	sales, err := s.saleRepo.ListRecent(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sales, nil
}

// resolveDiscount возвращает скидку из запроса, а при её отсутствии — из
// таблицы пресетов. Явно указанная скидка всегда важнее подобранной.
func (s *SalesUseCase) resolveDiscount(productName string, req *RecordSaleReq) (int64, string) {
	if req.DiscountBP != nil {
		return *req.DiscountBP, ""
	}

	rule := s.resolver.Resolve(productName, decimal.New(req.UnitPrice, -2))
	if rule == nil {
		return 0, ""
	}

	return rule.DiscountBP(), rule.TradeScheme
}

func (s *SalesUseCase) invalidateCaches(ctx context.Context, productID int64) {
	const op = "SalesUseCase.invalidateCaches"

	if err := s.cacheRepo.DeleteProducts(ctx, []int64{productID}); err != nil {
		s.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}
	if err := s.cacheRepo.DeleteDashboard(ctx); err != nil {
		s.logger.Warnf("Failed to invalidate dashboard cache: %v", e.Wrap(op, err))
	}
}

func (s *SalesUseCase) validateSale(req *RecordSaleReq) error {
	if req.Quantity <= 0 {
		return e.ErrInvalidQuantity
	}

	if req.UnitPrice <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.DiscountBP != nil && (*req.DiscountBP < 0 || *req.DiscountBP > 10000) {
		return e.ErrStatusBadRequest
	}

	return nil
}

// SaleTotal вычисляет итог продажи в центах: количество на цену за вычетом
// скидки в базисных пунктах, округление до цента.
func SaleTotal(quantity, unitPriceCents, discountBP int64) int64 {
	gross := decimal.NewFromInt(quantity).Mul(decimal.NewFromInt(unitPriceCents))

	return gross.
		Mul(decimal.NewFromInt(10000 - discountBP)).
		Div(decimal.NewFromInt(10000)).
		Round(0).
		IntPart()
}

// appendStockMovement пишет событие движения остатков в outbox текущей транзакции.
func appendStockMovement(
	ctx context.Context,
	outboxRepo OutboxRepository,
	producer MessageProducer,
	eventType OutboxEventType,
	productID, delta, newQuantity int64,
	occurredAt time.Time,
) error {
	eventID := uuid.NewString()

	payload, err := producer.PayloadBytes(&StockMovementReq{
		EventID:     eventID,
		EventType:   eventType,
		ProductID:   productID,
		Delta:       delta,
		NewQuantity: newQuantity,
		OccurredAt:  occurredAt,
	})
	if err != nil {
		return err
	}

	_, err = outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	})

	return err
}

// normalizeLimit ограничивает размер выборки списков разумными рамками.
func normalizeLimit(limit int) int {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
