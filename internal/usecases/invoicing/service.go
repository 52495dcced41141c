package invoicing

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrMissingInvoiceData = errors.New("parque e mês são obrigatórios")

//go:generate mockgen -source=service.go -destination=mocks/mock_invoicing.go -package=mocks
type InvoiceService interface {
	GetCards(ctx context.Context) (*domain.InvoiceCards, error)
	Generate(ctx context.Context, req domain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error)
}

type Service struct {
	invoiceRepo     repository.InvoiceRepository
	taquillaService taquilla.TaquillaIntegrator
}

func NewService(invoiceRepo repository.InvoiceRepository, taquillaService taquilla.TaquillaIntegrator) InvoiceService {
	return &Service{
		invoiceRepo:     invoiceRepo,
		taquillaService: taquillaService,
	}
}

func (s *Service) GetCards(ctx context.Context) (*domain.InvoiceCards, error) {
	var (
		cards        domain.InvoiceCards
		invoicesErr  error
		customersErr error
		totalsErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		cards.NumberOfInvoices, invoicesErr = s.invoiceRepo.CountInvoices(ctx)
	}()

	go func() {
		defer wg.Done()
		cards.NumberOfCustomers, customersErr = s.invoiceRepo.CountCustomers(ctx)
	}()

	go func() {
		defer wg.Done()
		cards.TotalPaidInvoices, cards.TotalPendingInvoices, totalsErr = s.invoiceRepo.SumByStatus(ctx)
	}()

	wg.Wait()

	if err := errors.Join(invoicesErr, customersErr, totalsErr); err != nil {
		logrus.WithError(err).Error("Erro ao buscar os cards de faturas")
		return nil, err
	}

	return &cards, nil
}

func (s *Service) Generate(ctx context.Context, req domain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error) {
	req.Park = strings.TrimSpace(req.Park)
	req.Month = strings.TrimSpace(req.Month)

	if req.Park == "" || req.Month == "" {
		return nil, ErrMissingInvoiceData
	}

	return s.taquillaService.GenerateInvoice(ctx, req)
}
