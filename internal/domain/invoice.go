package domain

import "encoding/json"

// Invoice é a fatura mensal consolidada devolvida pelo backend
type Invoice struct {
	Month string        `json:"Mes"`
	Total NumericString `json:"Total"`
}

func (i Invoice) SearchFields() []string {
	return []string{i.Month, string(i.Total)}
}

type InvoiceCards struct {
	NumberOfCustomers    int     `json:"numberOfCustomers"`
	NumberOfInvoices     int     `json:"numberOfInvoices"`
	TotalPaidInvoices    float64 `json:"totalPaidInvoices"`
	TotalPendingInvoices float64 `json:"totalPendingInvoices"`
}

type GenerateInvoiceRequest struct {
	Park  string `json:"park"`
	Month string `json:"month"`
}

// GeneratedInvoice é repassada ao cliente sem transformação
type GeneratedInvoice = json.RawMessage
