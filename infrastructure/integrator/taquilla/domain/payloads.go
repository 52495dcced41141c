package taquilladomain

import (
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string              `json:"message"`
	User    *domain.BackendUser `json:"user"`
}

// SalesRequest é o corpo comum dos endpoints de vendas
type SalesRequest struct {
	IDPark     string `json:"idPark"`
	FilterType string `json:"filterType"`
}

type PassportSalesResponse struct {
	Message string               `json:"message"`
	Records []domain.SalesRecord `json:"TotalSalesTipePasport"`
}

type TotalSalesResponse struct {
	Message string                   `json:"message"`
	Records []domain.TotalSaleRecord `json:"totalSales"`
}

type TicketsRequest struct {
	IDPark string `json:"idpark"`
}

type GenerateInvoiceRequest struct {
	IDPark string `json:"idpark"`
	Month  string `json:"month"`
}

// ListEnvelope cobre as respostas em objeto: {data: [...]} ou {message: "..."} quando não há registros
type ListEnvelope[T any] struct {
	Data    []T    `json:"data"`
	Message string `json:"message"`
}
