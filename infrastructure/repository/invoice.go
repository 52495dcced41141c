package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
)

const (
	invoicesTable  = "invoices"
	customersTable = "customers"
)

//go:generate mockgen -source=invoice.go -destination=mocks/mock_invoice.go -package=mocks
type InvoiceRepository interface {
	CountInvoices(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	// SumByStatus devolve os totais pagos e pendentes
	SumByStatus(ctx context.Context) (paid float64, pending float64, err error)
}

type invoiceRepository struct {
	conn postgres.Queryer
}

func NewInvoiceRepository(conn postgres.Queryer) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) CountInvoices(ctx context.Context) (int, error) {
	return r.count(ctx, invoicesTable)
}

func (r *invoiceRepository) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, customersTable)
}

func (r *invoiceRepository) SumByStatus(ctx context.Context) (float64, float64, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid",
			"COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending",
		).
		From(invoicesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var paid, pending float64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&paid, &pending); err != nil {
		return 0, 0, fmt.Errorf("erro ao somar faturas por status: %w", err)
	}

	return paid, pending, nil
}

func (r *invoiceRepository) count(ctx context.Context, table string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar %s: %w", table, err)
	}

	return count, nil
}
