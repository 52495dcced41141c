package reporting

import (
	"errors"
	"fmt"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const dayLabelLayout = "Jan 2, 2006"

var (
	ErrMalformedCount = errors.New("quantidade de passaportes inválida")
	ErrNegativeCount  = errors.New("quantidade de passaportes negativa")
	ErrMalformedTotal = errors.New("total de vendas inválido")
)

// FormatDateLabel renderiza a data como "Jan 2, 2006" quando o filtro é day. Valores não
// reconhecidos como data, ou outros filtros, mantêm o texto original.
func FormatDateLabel(raw, filter string) string {
	if filter != domain.FilterDay {
		return raw
	}

	date, err := utils.ParseDate(raw)
	if err != nil {
		return raw
	}

	return date.Format(dayLabelLayout)
}

// orderedDays agrupa pelo valor cru de date, preservando a ordem de primeira aparição
type orderedDays[T any] struct {
	order []string
	days  map[string]*T
}

func newOrderedDays[T any]() *orderedDays[T] {
	return &orderedDays[T]{days: make(map[string]*T)}
}

func (o *orderedDays[T]) get(key string, create func() *T) *T {
	if day, ok := o.days[key]; ok {
		return day
	}

	day := create()
	o.days[key] = day
	o.order = append(o.order, key)
	return day
}

func (o *orderedDays[T]) values() []*T {
	out := make([]*T, 0, len(o.order))
	for _, key := range o.order {
		out = append(out, o.days[key])
	}
	return out
}

// parseCounts converte pastype1..pastype4 para decimal. Vazio vale zero.
func parseCounts(record domain.SalesRecord) ([domain.PassportTypes]decimal.Decimal, error) {
	var counts [domain.PassportTypes]decimal.Decimal

	for i, raw := range record.Counts() {
		value, err := raw.Decimal()
		if err != nil {
			return counts, fmt.Errorf("%w: data %s, pastype%d=%q", ErrMalformedCount, record.Date, i+1, string(raw))
		}
		if value.IsNegative() {
			return counts, fmt.Errorf("%w: data %s, pastype%d=%s", ErrNegativeCount, record.Date, i+1, value)
		}
		counts[i] = value
	}

	return counts, nil
}

type priceResolver struct {
	tables map[int]domain.PriceTable
	warned map[int]bool
}

func newPriceResolver() *priceResolver {
	return &priceResolver{
		tables: make(map[int]domain.PriceTable),
		warned: make(map[int]bool),
	}
}

// resolve avisa uma única vez por parque desconhecido em cada relatório
func (p *priceResolver) resolve(parkID int) domain.PriceTable {
	table, ok := p.tables[parkID]
	if !ok {
		table = ResolvePriceTable(parkID)
		p.tables[parkID] = table
	}

	if !table.Known && !p.warned[parkID] {
		p.warned[parkID] = true
		logrus.WithField("park", parkID).Warn("Parque sem tabela de preços, vendas contabilizadas com preço zero")
	}

	return table
}

// AggregateRevenue soma quantidade × preço unitário nos buckets nomeados, por data
func AggregateRevenue(records []domain.SalesRecord, filter string) ([]*domain.AggregatedDay, error) {
	return aggregateBuckets(records, filter, func(count decimal.Decimal, price domain.PassportPrice) decimal.Decimal {
		return count.Mul(price.UnitPrice)
	})
}

// AggregateTickets soma as quantidades cruas nos buckets nomeados, por data
func AggregateTickets(records []domain.SalesRecord, filter string) ([]*domain.AggregatedDay, error) {
	return aggregateBuckets(records, filter, func(count decimal.Decimal, _ domain.PassportPrice) decimal.Decimal {
		return count
	})
}

func aggregateBuckets(
	records []domain.SalesRecord,
	filter string,
	contribution func(count decimal.Decimal, price domain.PassportPrice) decimal.Decimal,
) ([]*domain.AggregatedDay, error) {
	grouped := newOrderedDays[domain.AggregatedDay]()
	prices := newPriceResolver()

	for _, record := range records {
		counts, err := parseCounts(record)
		if err != nil {
			return nil, err
		}

		day := grouped.get(record.Date, func() *domain.AggregatedDay {
			return domain.NewAggregatedDay(FormatDateLabel(record.Date, filter))
		})

		table := prices.resolve(record.ParkID)
		for i, price := range table.Prices {
			idx := domain.BucketIndex(price.Name)
			if idx < 0 {
				// nomes genéricos de parques desconhecidos não fazem parte do esquema
				continue
			}
			day.Values[idx] = day.Values[idx].Add(contribution(counts[i], price))
		}
	}

	return grouped.values(), nil
}

type summaryAccumulator struct {
	date         string
	totalSales   decimal.Decimal
	totalTickets decimal.Decimal
}

// AggregateSummary produz total vendido e total de tickets por data. churn é sempre zero.
func AggregateSummary(records []domain.SalesRecord, filter string) ([]domain.SalesSummaryDay, error) {
	grouped := newOrderedDays[summaryAccumulator]()
	prices := newPriceResolver()

	for _, record := range records {
		counts, err := parseCounts(record)
		if err != nil {
			return nil, err
		}

		acc := grouped.get(record.Date, func() *summaryAccumulator {
			return &summaryAccumulator{
				date:         FormatDateLabel(record.Date, filter),
				totalSales:   decimal.Zero,
				totalTickets: decimal.Zero,
			}
		})

		table := prices.resolve(record.ParkID)
		for i, price := range table.Prices {
			acc.totalSales = acc.totalSales.Add(counts[i].Mul(price.UnitPrice))
			acc.totalTickets = acc.totalTickets.Add(counts[i])
		}
	}

	accumulated := grouped.values()
	summary := make([]domain.SalesSummaryDay, 0, len(accumulated))
	for _, acc := range accumulated {
		summary = append(summary, domain.SalesSummaryDay{
			Date:         acc.date,
			TotalSales:   acc.totalSales.InexactFloat64(),
			TotalTickets: acc.totalTickets.InexactFloat64(),
			Churn:        0,
		})
	}

	return summary, nil
}

// ConvertTotalSales converte total_sales para número e aplica o rótulo de data do filtro
func ConvertTotalSales(records []domain.TotalSaleRecord, filter string) ([]domain.TotalSale, error) {
	sales := make([]domain.TotalSale, 0, len(records))

	for _, record := range records {
		value, err := record.TotalSales.Decimal()
		if err != nil {
			return nil, fmt.Errorf("%w: data %s, total_sales=%q", ErrMalformedTotal, record.Date, string(record.TotalSales))
		}

		sales = append(sales, domain.TotalSale{
			Date:       FormatDateLabel(record.Date, filter),
			TotalSales: value.InexactFloat64(),
		})
	}

	return sales, nil
}
