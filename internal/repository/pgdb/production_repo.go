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

// ProductionRepo реализует репозиторий выпусков продукции поверх PostgreSQL.
type ProductionRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductionConverter
}

func NewProductionRepo(pool *pgxpool.Pool, conv converter.ProductionConverter) *ProductionRepo {
	return &ProductionRepo{pool: pool, conv: conv}
}

// Create сохраняет выпуск продукции в рамках текущей транзакции.
func (p *ProductionRepo) Create(ctx context.Context, batch *domain.ProductionBatch) (*domain.ProductionBatch, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(batch)
	query := `
		INSERT INTO production_batches (product_id, quantity, note, produced_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ProductID,
		model.Quantity,
		model.Note,
		model.ProducedAt,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}
