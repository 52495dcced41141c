package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	FilterDay = "day"

	// PassportTypes é a quantidade de tipos de passaporte por parque (pastype1..pastype4)
	PassportTypes = 4
)

// BucketNames define o esquema fixo de buckets do relatório, na ordem de exibição
var BucketNames = []string{
	"Pasaporte Extremo",
	"Pasaporte Aventura",
	"Pasaporte Fusión",
	"Ingreso Sin Atracciones",
	"Pasaporte Acuático Adultos",
	"Pasaporte Acuático Niños",
	"Ingreso General",
	"N/A",
}

// BucketIndex retorna a posição do bucket no esquema, ou -1 se o nome não pertence ao esquema
func BucketIndex(name string) int {
	for i, n := range BucketNames {
		if n == name {
			return i
		}
	}
	return -1
}

// NumericString aceita tanto "12" quanto 12 no JSON do backend e guarda o texto original
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("valor numérico inválido %s: %w", string(data), err)
	}
	*n = NumericString(num.String())
	return nil
}

// Decimal converte o valor para decimal. Vazio vale zero.
func (n NumericString) Decimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// SalesRecord é a linha crua de vendas por dia e por parque devolvida pelo backend
type SalesRecord struct {
	Date     string        `json:"date"`
	ParkID   int           `json:"id_park"`
	PasType1 NumericString `json:"pastype1"`
	PasType2 NumericString `json:"pastype2"`
	PasType3 NumericString `json:"pastype3"`
	PasType4 NumericString `json:"pastype4"`
}

// Counts retorna as quantidades por tipo de passaporte na ordem pastype1..pastype4
func (r SalesRecord) Counts() [PassportTypes]NumericString {
	return [PassportTypes]NumericString{r.PasType1, r.PasType2, r.PasType3, r.PasType4}
}

// TotalSaleRecord é a linha crua do endpoint de vendas totais
type TotalSaleRecord struct {
	Date       string        `json:"date"`
	TotalSales NumericString `json:"total_sales"`
}

type TotalSale struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// PassportPrice é um par (nome do bucket, preço unitário)
type PassportPrice struct {
	Name      string
	UnitPrice decimal.Decimal
}

// PriceTable é a tabela de preços de um parque
type PriceTable struct {
	ParkID int
	Known  bool
	Prices [PassportTypes]PassportPrice
}

// AggregatedDay guarda os buckets de um dia, alinhados com BucketNames
type AggregatedDay struct {
	Date   string
	Values []decimal.Decimal
}

func NewAggregatedDay(date string) *AggregatedDay {
	values := make([]decimal.Decimal, len(BucketNames))
	for i := range values {
		values[i] = decimal.Zero
	}
	return &AggregatedDay{Date: date, Values: values}
}

// Value retorna o valor acumulado de um bucket pelo nome
func (d *AggregatedDay) Value(name string) decimal.Decimal {
	idx := BucketIndex(name)
	if idx < 0 {
		return decimal.Zero
	}
	return d.Values[idx]
}

// MarshalJSON mantém o formato consumido pelos gráficos: date + um campo string por bucket, em ordem
func (d AggregatedDay) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	date, err := json.Marshal(d.Date)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"date":`)
	buf.Write(date)

	for i, name := range BucketNames {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}

		value := decimal.Zero
		if i < len(d.Values) {
			value = d.Values[i]
		}

		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(`"` + value.String() + `"`)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *AggregatedDay) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	day := NewAggregatedDay(raw["date"])
	for i, name := range BucketNames {
		v, ok := raw[name]
		if !ok {
			continue
		}
		value, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("bucket %q inválido: %w", name, err)
		}
		day.Values[i] = value
	}

	*d = *day
	return nil
}

// SalesSummaryDay alimenta os cards de KPI (total vendido, tickets vendidos)
type SalesSummaryDay struct {
	Date         string  `json:"date"`
	TotalSales   float64 `json:"total_sales"`
	TotalTickets float64 `json:"total_tickets"`
	Churn        float64 `json:"churn"`
}
