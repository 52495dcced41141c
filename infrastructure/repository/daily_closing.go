package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dailyClosingsTable   = "daily_sales_closings dc"
	defaultClosingsLimit = 30
)

//go:generate mockgen -source=daily_closing.go -destination=mocks/mock_daily_closing.go -package=mocks
type DailyClosingRepository interface {
	// SaveOrUpdate grava os fechamentos em uma única transação, um por (parque, data)
	SaveOrUpdate(ctx context.Context, closings []*domain.DailySalesClosing) error
	// List devolve os fechamentos mais recentes. parkID zero lista todos os parques
	List(ctx context.Context, parkID int, limit int) ([]*domain.DailySalesClosing, error)
}

type dailyClosingRepository struct {
	conn postgres.Conn
}

func NewDailyClosingRepository(conn postgres.Conn) DailyClosingRepository {
	return &dailyClosingRepository{
		conn: conn,
	}
}

func (r *dailyClosingRepository) SaveOrUpdate(ctx context.Context, closings []*domain.DailySalesClosing) error {
	if len(closings) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, closing := range closings {
			if closing.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar id do fechamento: %w", err)
				}
				closing.ID = id
			}

			// NULL quando não há buckets; []byte vazio não é JSON válido para o jsonb
			var revenue any
			if closing.Revenue != nil {
				revenueJSON, err := json.Marshal(closing.Revenue)
				if err != nil {
					return fmt.Errorf("erro ao serializar buckets para JSON: %w", err)
				}
				revenue = string(revenueJSON)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("daily_sales_closings").
				Columns("id", "park_id", "date", "total_sales", "total_tickets", "revenue").
				Values(
					closing.ID,
					closing.ParkID,
					closing.Date,
					closing.TotalSales,
					closing.TotalTickets,
					revenue,
				).
				Suffix(`
					ON CONFLICT (park_id, date) DO UPDATE SET
						total_sales = EXCLUDED.total_sales,
						total_tickets = EXCLUDED.total_tickets,
						revenue = EXCLUDED.revenue,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *dailyClosingRepository) List(ctx context.Context, parkID int, limit int) ([]*domain.DailySalesClosing, error) {
	if limit <= 0 {
		limit = defaultClosingsLimit
	}

	queryBuilder := squirrel.
		Select("dc.id, dc.park_id, dc.date, dc.total_sales, dc.total_tickets, dc.revenue, dc.created_at, dc.updated_at").
		From(dailyClosingsTable).
		OrderBy("dc.date DESC", "dc.park_id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if parkID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"dc.park_id": parkID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	closings := make([]*domain.DailySalesClosing, 0)
	for rows.Next() {
		closing := &domain.DailySalesClosing{}
		var revenueJSON []byte

		if err := rows.Scan(
			&closing.ID,
			&closing.ParkID,
			&closing.Date,
			&closing.TotalSales,
			&closing.TotalTickets,
			&revenueJSON,
			&closing.CreatedAt,
			&closing.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fechamento: %w", err)
		}

		if revenueJSON != nil {
			revenue := &domain.AggregatedDay{}
			if err := json.Unmarshal(revenueJSON, revenue); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de revenue: %w", err)
			}
			closing.Revenue = revenue
		}

		closings = append(closings, closing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return closings, nil
}
