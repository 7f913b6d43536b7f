package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному имени.
// Запись обновляется только при изменении цены или категории.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*usecase.UpsertProductRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// VALUES ($1, $2, $3) name, price, category_id
	query := `
		WITH upsert AS (
		INSERT INTO products (name, price, category_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			price = EXCLUDED.price,
			category_id = EXCLUDED.category_id,
			updated_at = NOW()
		WHERE
			products.price IS DISTINCT FROM EXCLUDED.price OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id
		RETURNING
			id, name, price, category_id, quantity, created_at, updated_at, is_archived
		)
		SELECT
			id, name, price, category_id, quantity, created_at, updated_at, is_archived,
			false AS no_changes
		FROM upsert

		UNION ALL

		SELECT
			id, name, price, category_id, quantity, created_at, updated_at, is_archived,
			true AS no_changes
		FROM products
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.ProductModel
	var noChanges bool
	err = tx.QueryRow(ctx, query, product.Name, product.Price, product.CategoryID).
		Scan(
			&model.ID, &model.Name, &model.Price, &model.CategoryID, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived, &noChanges,
		)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertProductRes(p.conv.ToEntity(&model), noChanges), nil
}

// GetByID возвращает товар по идентификатору в рамках текущей транзакции.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, price, category_id, quantity, created_at, updated_at, is_archived
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Price, &model.CategoryID, &model.Quantity,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам, включая название категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.price, pr.quantity, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1)
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Quantity, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	return result, nil
}

// AdjustQuantity атомарно изменяет остаток товара через хранимую функцию
// update_product_quantity. Функция возвращает NULL для несуществующего
// товара и false, когда остаток ушёл бы в минус.
func (p *ProductRepo) AdjustQuantity(ctx context.Context, productID, delta int64) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	var ok *bool
	if err := tx.QueryRow(ctx, "SELECT update_product_quantity($1, $2)", productID, delta).Scan(&ok); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if ok == nil {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	if !*ok {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
	}

	var newQty int64
	if err := tx.QueryRow(ctx, "SELECT quantity FROM products WHERE id = $1", productID).Scan(&newQty); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return newQty, nil
}

// AddImages привязывает ключи изображений в MinIO к товару.
func (p *ProductRepo) AddImages(ctx context.Context, productID int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, object_key)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (object_key) DO NOTHING;
	`

	if _, err := tx.Exec(ctx, query, productID, keys); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// LowStock возвращает товары с остатком не выше порога, самые пустые первыми.
func (p *ProductRepo) LowStock(ctx context.Context, threshold int64, limit int) ([]usecase.ProductStock, error) {
	query := `
		SELECT id, name, quantity
		FROM products
		WHERE quantity <= $1 AND NOT is_archived
		ORDER BY quantity, name
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductStock, 0)
	for rows.Next() {
		var stock usecase.ProductStock
		if err := rows.Scan(&stock.ProductID, &stock.Name, &stock.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, stock)
	}

	return result, nil
}
