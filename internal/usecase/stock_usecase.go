package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// StockUseCase реализует бизнес-логику выпуска, списаний и ручных корректировок остатков.
type StockUseCase struct {
	productionRepo ProductionRepository
	wastageRepo    WastageRepository
	productRepo    ProductRepository
	outboxRepo     OutboxRepository
	dbPool         transaction.Transactional
	producer       MessageProducer
	cacheRepo      CacheRepository
	logger         logger.Logger
}

func NewStockUC(
	productionRepo ProductionRepository,
	wastageRepo WastageRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	producer MessageProducer,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *StockUseCase {
	return &StockUseCase{
		productionRepo: productionRepo,
		wastageRepo:    wastageRepo,
		productRepo:    productRepo,
		outboxRepo:     outboxRepo,
		dbPool:         dbPool,
		producer:       producer,
		cacheRepo:      cacheRepo,
		logger:         logger,
	}
}

// RecordProduction регистрирует выпуск продукции и увеличивает остаток.
func (s *StockUseCase) RecordProduction(ctx context.Context, req *RecordProductionReq) (*StockChangeRes, error) {
	const op = "StockUseCase.RecordProduction"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	res, err := s.applyMovement(ctx, StockProduced, req.ProductID, req.Quantity, req.ProducedAt, func(ctx context.Context) error {
		_, err := s.productionRepo.Create(ctx, domain.NewProductionBatch(req.ProductID, req.Quantity, req.Note, req.ProducedAt))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// RecordWastage регистрирует списание и уменьшает остаток.
func (s *StockUseCase) RecordWastage(ctx context.Context, req *RecordWastageReq) (*StockChangeRes, error) {
	const op = "StockUseCase.RecordWastage"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, e.Wrap(op, e.ErrWastageReasonRequired)
	}

	res, err := s.applyMovement(ctx, StockWasted, req.ProductID, -req.Quantity, req.WastedAt, func(ctx context.Context) error {
		_, err := s.wastageRepo.Create(ctx, domain.NewWastage(req.ProductID, req.Quantity, req.Reason, req.WastedAt))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// AdjustQuantity выполняет ручную корректировку остатка (дельта любого знака).
// Используется gRPC-сервисом StockService.
func (s *StockUseCase) AdjustQuantity(ctx context.Context, productID, delta int64) (*StockChangeRes, error) {
	const op = "StockUseCase.AdjustQuantity"

	if delta == 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	res, err := s.applyMovement(ctx, StockAdjusted, productID, delta, time.Now(), nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// applyMovement выполняет изменение остатка в транзакции: запись документа
// движения (если есть), корректировка остатка и событие в outbox.
func (s *StockUseCase) applyMovement(
	ctx context.Context,
	eventType OutboxEventType,
	productID, delta int64,
	occurredAt time.Time,
	createDoc func(ctx context.Context) error,
) (*StockChangeRes, error) {
	var err error

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if createDoc != nil {
		if err = createDoc(ctx); err != nil {
			return nil, err
		}
	}

	newQty, err := s.productRepo.AdjustQuantity(ctx, productID, delta)
	if err != nil {
		return nil, err
	}

	if err = appendStockMovement(ctx, s.outboxRepo, s.producer, eventType, productID, delta, newQty, occurredAt); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx, productID)

	return NewStockChangeRes(productID, newQty), nil
}

func (s *StockUseCase) invalidateCaches(ctx context.Context, productID int64) {
	const op = "StockUseCase.invalidateCaches"

	if err := s.cacheRepo.DeleteProducts(ctx, []int64{productID}); err != nil {
		s.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}
	if err := s.cacheRepo.DeleteDashboard(ctx); err != nil {
		s.logger.Warnf("Failed to invalidate dashboard cache: %v", e.Wrap(op, err))
	}
}
