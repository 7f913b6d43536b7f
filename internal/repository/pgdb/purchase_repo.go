package pgdb

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PurchaseRepo реализует репозиторий приходов поверх PostgreSQL.
type PurchaseRepo struct {
	pool *pgxpool.Pool
	conv converter.PurchaseConverter
}

func NewPurchaseRepo(pool *pgxpool.Pool, conv converter.PurchaseConverter) *PurchaseRepo {
	return &PurchaseRepo{pool: pool, conv: conv}
}

// Create сохраняет приход в рамках текущей транзакции.
func (p *PurchaseRepo) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(purchase)
	query := `
		INSERT INTO purchases (product_id, quantity, unit_cost, total_cost, purchased_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ProductID,
		model.Quantity,
		model.UnitCost,
		model.TotalCost,
		model.PurchasedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// ListRecent возвращает последние приходы с названиями товаров, новые первыми.
func (p *PurchaseRepo) ListRecent(ctx context.Context, limit int) ([]usecase.PurchaseInfo, error) {
	query := `
		SELECT pu.id, pu.product_id, pr.name, pu.quantity, pu.unit_cost, pu.total_cost, pu.purchased_at
		FROM purchases pu
		JOIN products pr ON pu.product_id = pr.id
		ORDER BY pu.purchased_at DESC, pu.id DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.PurchaseInfo, 0, limit)
	for rows.Next() {
		var purchase usecase.PurchaseInfo
		if err := rows.Scan(
			&purchase.ID, &purchase.ProductID, &purchase.ProductName,
			&purchase.Quantity, &purchase.UnitCost, &purchase.TotalCost, &purchase.PurchasedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, purchase)
	}

	return result, nil
}
