package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesClosing é o fechamento diário de vendas de um parque, arquivado pelo agendador
type DailySalesClosing struct {
	ID           string          `json:"id"`
	ParkID       int             `json:"park_id"`
	Date         string          `json:"date"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalTickets decimal.Decimal `json:"total_tickets"`
	Revenue      *AggregatedDay  `json:"revenue"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
