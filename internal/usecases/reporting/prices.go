package reporting

import (
	"fmt"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ParkAdventure = 1
	ParkWater     = 2
)

var priceTables = map[int][domain.PassportTypes]domain.PassportPrice{
	ParkAdventure: {
		{Name: "Pasaporte Extremo", UnitPrice: decimal.NewFromInt(48600)},
		{Name: "Pasaporte Aventura", UnitPrice: decimal.NewFromInt(37000)},
		{Name: "Pasaporte Fusión", UnitPrice: decimal.NewFromInt(32000)},
		{Name: "Ingreso Sin Atracciones", UnitPrice: decimal.NewFromInt(7600)},
	},
	ParkWater: {
		{Name: "Pasaporte Acuático Adultos", UnitPrice: decimal.NewFromInt(19200)},
		{Name: "Pasaporte Acuático Niños", UnitPrice: decimal.NewFromInt(14200)},
		{Name: "Ingreso General", UnitPrice: decimal.NewFromInt(7600)},
		{Name: "N/A", UnitPrice: decimal.Zero},
	},
}

// ResolvePriceTable devolve os quatro pares (nome, preço) do parque.
// Parques desconhecidos recebem nomes genéricos e preço zero, com Known=false.
func ResolvePriceTable(parkID int) domain.PriceTable {
	if prices, ok := priceTables[parkID]; ok {
		return domain.PriceTable{ParkID: parkID, Known: true, Prices: prices}
	}

	table := domain.PriceTable{ParkID: parkID, Known: false}
	for i := range table.Prices {
		table.Prices[i] = domain.PassportPrice{
			Name:      fmt.Sprintf("Pasaporte Tipo %d", i+1),
			UnitPrice: decimal.Zero,
		}
	}

	return table
}
