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

// SaleRepo реализует репозиторий продаж поверх PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
	conv converter.SaleConverter
}

func NewSaleRepo(pool *pgxpool.Pool, conv converter.SaleConverter) *SaleRepo {
	return &SaleRepo{pool: pool, conv: conv}
}

// Create сохраняет продажу в рамках текущей транзакции.
func (s *SaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := s.conv.ToModel(sale)
	query := `
		INSERT INTO sales (product_id, quantity, unit_price, discount_bp, trade_scheme, total, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ProductID,
		model.Quantity,
		model.UnitPrice,
		model.DiscountBP,
		model.TradeScheme,
		model.Total,
		model.SoldAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}

// ListRecent возвращает последние продажи с названиями товаров, новые первыми.
func (s *SaleRepo) ListRecent(ctx context.Context, limit int) ([]usecase.SaleInfo, error) {
	query := `
		SELECT sl.id, sl.product_id, pr.name, sl.quantity, sl.unit_price,
		       sl.discount_bp, sl.trade_scheme, sl.total, sl.sold_at
		FROM sales sl
		JOIN products pr ON sl.product_id = pr.id
		ORDER BY sl.sold_at DESC, sl.id DESC
		LIMIT $1
	`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.SaleInfo, 0, limit)
	for rows.Next() {
		var sale usecase.SaleInfo
		if err := rows.Scan(
			&sale.ID, &sale.ProductID, &sale.ProductName, &sale.Quantity, &sale.UnitPrice,
			&sale.DiscountBP, &sale.TradeScheme, &sale.Total, &sale.SoldAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, sale)
	}

	return result, nil
}
