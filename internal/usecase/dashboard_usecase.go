package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

const (
	maxDashboardDays  = 90
	lowStockThreshold = 10
	lowStockLimit     = 10
)

// DashboardUseCase строит сводку активности за последние дни.
type DashboardUseCase struct {
	statsRepo   StatsRepository
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewDashboardUC(
	statsRepo StatsRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		statsRepo:   statsRepo,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// Summary возвращает сводку за последние req.Days дней (от 1 до 90).
// Сводка кэшируется в Redis с коротким TTL и инвалидируется при любом
// движении остатков.
func (d *DashboardUseCase) Summary(ctx context.Context, req *DashboardReq) (*DashboardSummary, error) {
	const op = "DashboardUseCase.Summary"

	if req.Days <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidDate)
	}
	if req.Days > maxDashboardDays {
		return nil, e.Wrap(op, e.ErrDashboardRangeTooWide)
	}

	if cached, err := d.cacheRepo.GetDashboard(ctx, req.Days); err != nil {
		d.logger.Warnf("Failed to read dashboard from cache: %v", e.Wrap(op, err))
	} else if cached != nil {
		return cached, nil
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -req.Days).Truncate(24 * time.Hour)

	daily, err := d.statsRepo.DailyActivity(ctx, from, now)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	lowStock, err := d.productRepo.LowStock(ctx, lowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := &DashboardSummary{
		Days:        req.Days,
		GeneratedAt: now,
		Daily:       daily,
		LowStock:    lowStock,
	}

	if err := d.cacheRepo.SetDashboard(ctx, req.Days, summary); err != nil {
		d.logger.Warnf("Failed to cache dashboard summary: %v", e.Wrap(op, err))
	}

	return summary, nil
}
