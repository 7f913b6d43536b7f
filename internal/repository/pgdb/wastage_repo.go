package pgdb

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// WastageRepo реализует репозиторий списаний поверх PostgreSQL.
type WastageRepo struct {
	pool *pgxpool.Pool
	conv converter.WastageConverter
}

func NewWastageRepo(pool *pgxpool.Pool, conv converter.WastageConverter) *WastageRepo {
	return &WastageRepo{pool: pool, conv: conv}
}

// Create сохраняет списание в рамках текущей транзакции.
func (w *WastageRepo) Create(ctx context.Context, wastage *domain.Wastage) (*domain.Wastage, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := w.conv.ToModel(wastage)
	query := `
		INSERT INTO wastages (product_id, quantity, reason, wasted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ProductID,
		model.Quantity,
		model.Reason,
		model.WastedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return w.conv.ToEntity(model), nil
}
