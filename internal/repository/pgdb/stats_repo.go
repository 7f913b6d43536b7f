package pgdb

import (
	"context"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// StatsRepo считает подневные агрегаты движений остатков поверх PostgreSQL.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// DailyActivity возвращает итоги продаж, закупок, выпуска и списаний по дням
// за полуинтервал [from, to). Дни без движений включаются с нулями.
func (s *StatsRepo) DailyActivity(ctx context.Context, from, to time.Time) ([]usecase.DailyActivity, error) {
	query := `
		WITH days AS (
			SELECT generate_series(
				date_trunc('day', $1::timestamptz),
				date_trunc('day', $2::timestamptz),
				interval '1 day'
			) AS day
		),
		sales_by_day AS (
			SELECT date_trunc('day', sold_at) AS day,
			       SUM(total) AS sales_total,
			       SUM(quantity) AS units_sold
			FROM sales
			WHERE sold_at >= $1 AND sold_at < $2
			GROUP BY 1
		),
		purchases_by_day AS (
			SELECT date_trunc('day', purchased_at) AS day,
			       SUM(total_cost) AS purchases_total,
			       SUM(quantity) AS units_purchased
			FROM purchases
			WHERE purchased_at >= $1 AND purchased_at < $2
			GROUP BY 1
		),
		production_by_day AS (
			SELECT date_trunc('day', produced_at) AS day,
			       SUM(quantity) AS units_produced
			FROM production_batches
			WHERE produced_at >= $1 AND produced_at < $2
			GROUP BY 1
		),
		wastages_by_day AS (
			SELECT date_trunc('day', wasted_at) AS day,
			       SUM(quantity) AS units_wasted
			FROM wastages
			WHERE wasted_at >= $1 AND wasted_at < $2
			GROUP BY 1
		)
		SELECT
			days.day,
			COALESCE(s.sales_total, 0),
			COALESCE(p.purchases_total, 0),
			COALESCE(s.units_sold, 0),
			COALESCE(p.units_purchased, 0),
			COALESCE(pr.units_produced, 0),
			COALESCE(w.units_wasted, 0)
		FROM days
		LEFT JOIN sales_by_day s ON s.day = days.day
		LEFT JOIN purchases_by_day p ON p.day = days.day
		LEFT JOIN production_by_day pr ON pr.day = days.day
		LEFT JOIN wastages_by_day w ON w.day = days.day
		ORDER BY days.day;
	`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.DailyActivity, 0)
	for rows.Next() {
		var day usecase.DailyActivity
		if err := rows.Scan(
			&day.Day,
			&day.SalesTotal,
			&day.PurchasesTotal,
			&day.UnitsSold,
			&day.UnitsPurchased,
			&day.UnitsProduced,
			&day.UnitsWasted,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, day)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
