package reporting

import (
	"context"
	"strings"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	TotalSales(ctx context.Context, parkID, filter string) ([]domain.TotalSale, error)
	PassportRevenue(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error)
	PassportTickets(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error)
	SalesSummary(ctx context.Context, parkID, filter string) ([]domain.SalesSummaryDay, error)
	ExportPassportRevenue(ctx context.Context, parkID, filter string) ([]byte, error)
}

type Service struct {
	taquillaService taquilla.TaquillaIntegrator
}

func NewService(taquillaService taquilla.TaquillaIntegrator) Reporter {
	return &Service{
		taquillaService: taquillaService,
	}
}

// NormalizeFilter aplica o filtro padrão (day) quando vazio. Outros valores seguem como vieram.
func NormalizeFilter(filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return domain.FilterDay
	}
	return filter
}

func (s *Service) TotalSales(ctx context.Context, parkID, filter string) ([]domain.TotalSale, error) {
	filter = NormalizeFilter(filter)

	records, err := s.taquillaService.GetTotalSales(ctx, parkID, filter)
	if err != nil {
		return nil, err
	}

	return ConvertTotalSales(records, filter)
}

func (s *Service) PassportRevenue(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error) {
	filter = NormalizeFilter(filter)

	records, err := s.taquillaService.GetPassportSales(ctx, parkID, filter)
	if err != nil {
		return nil, err
	}

	days, err := AggregateRevenue(records, filter)
	if err != nil {
		logrus.WithError(err).WithField("park", parkID).Error("Erro ao agregar receita por passaporte")
		return nil, err
	}

	return days, nil
}

func (s *Service) PassportTickets(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error) {
	filter = NormalizeFilter(filter)

	records, err := s.taquillaService.GetPassportSales(ctx, parkID, filter)
	if err != nil {
		return nil, err
	}

	days, err := AggregateTickets(records, filter)
	if err != nil {
		logrus.WithError(err).WithField("park", parkID).Error("Erro ao agregar tickets por passaporte")
		return nil, err
	}

	return days, nil
}

func (s *Service) SalesSummary(ctx context.Context, parkID, filter string) ([]domain.SalesSummaryDay, error) {
	filter = NormalizeFilter(filter)

	records, err := s.taquillaService.GetPassportSales(ctx, parkID, filter)
	if err != nil {
		return nil, err
	}

	summary, err := AggregateSummary(records, filter)
	if err != nil {
		logrus.WithError(err).WithField("park", parkID).Error("Erro ao agregar resumo de vendas")
		return nil, err
	}

	return summary, nil
}

func (s *Service) ExportPassportRevenue(ctx context.Context, parkID, filter string) ([]byte, error) {
	days, err := s.PassportRevenue(ctx, parkID, filter)
	if err != nil {
		return nil, err
	}

	return ExportAggregatedDays(days)
}
