package taquilla

import (
	"context"
	"errors"
	"strings"

	taquilladomain "github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/domain"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/taquillaclient"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ErrLoginRejected indica que o backend respondeu ao login sem usuário
var ErrLoginRejected = errors.New("login recusado pelo backend")

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks
type TaquillaIntegrator interface {
	Login(ctx context.Context, email, password string) (*domain.BackendUser, error)
	GetPassportSales(ctx context.Context, parkID, filter string) ([]domain.SalesRecord, error)
	GetTotalSales(ctx context.Context, parkID, filter string) ([]domain.TotalSaleRecord, error)
	GetTickets(ctx context.Context, parkID string) ([]domain.Ticket, error)
	GetUsers(ctx context.Context, status string) ([]domain.UserProfile, string, error)
	GetInvoices(ctx context.Context) ([]domain.Invoice, error)
	GenerateInvoice(ctx context.Context, req domain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error)
}

type TaquillaService struct {
	Client taquillaclient.Client
}

func New(client taquillaclient.Client) TaquillaIntegrator {
	return &TaquillaService{
		Client: client,
	}
}

func (s *TaquillaService) Login(ctx context.Context, email, password string) (*domain.BackendUser, error) {
	resp, err := s.Client.Login(ctx, taquilladomain.LoginRequest{Email: email, Password: password})
	if err != nil {
		logrus.WithError(err).Error("Erro ao autenticar no backend da taquilla")
		return nil, err
	}

	if resp.User == nil {
		logrus.WithField("message", resp.Message).Debug("Backend recusou o login")
		return nil, ErrLoginRejected
	}

	return resp.User, nil
}

func (s *TaquillaService) GetPassportSales(ctx context.Context, parkID, filter string) ([]domain.SalesRecord, error) {
	resp, err := s.Client.GetSalesByPassportType(ctx, taquilladomain.SalesRequest{IDPark: parkID, FilterType: filter})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"park": parkID, "filter": filter}).
			Error("Erro ao buscar vendas por tipo de passaporte")
		return nil, err
	}

	if len(resp.Records) == 0 {
		logrus.WithFields(logrus.Fields{"park": parkID, "filter": filter, "message": resp.Message}).
			Warn("Nenhum registro de vendas por tipo de passaporte")
		return []domain.SalesRecord{}, nil
	}

	return resp.Records, nil
}

func (s *TaquillaService) GetTotalSales(ctx context.Context, parkID, filter string) ([]domain.TotalSaleRecord, error) {
	resp, err := s.Client.GetTotalSales(ctx, taquilladomain.SalesRequest{IDPark: parkID, FilterType: filter})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"park": parkID, "filter": filter}).
			Error("Erro ao buscar vendas totais")
		return nil, err
	}

	if len(resp.Records) == 0 {
		logrus.WithFields(logrus.Fields{"park": parkID, "filter": filter, "message": resp.Message}).
			Warn("Nenhum registro de vendas totais")
		return []domain.TotalSaleRecord{}, nil
	}

	return resp.Records, nil
}

func (s *TaquillaService) GetTickets(ctx context.Context, parkID string) ([]domain.Ticket, error) {
	resp, err := s.Client.GetTickets(ctx, taquilladomain.TicketsRequest{IDPark: parkID})
	if err != nil {
		logrus.WithError(err).WithField("park", parkID).Error("Erro ao buscar tickets")
		return nil, err
	}

	if resp.Data == nil {
		return []domain.Ticket{}, nil
	}

	return resp.Data, nil
}

// GetUsers devolve também a mensagem do backend, que substitui a lista quando não há usuários
func (s *TaquillaService) GetUsers(ctx context.Context, status string) ([]domain.UserProfile, string, error) {
	resp, err := s.Client.GetUsers(ctx, strings.TrimSpace(status))
	if err != nil {
		logrus.WithError(err).WithField("status", status).Error("Erro ao buscar usuários da taquilla")
		return nil, "", err
	}

	if resp.Message != "" && len(resp.Data) == 0 {
		return []domain.UserProfile{}, resp.Message, nil
	}

	if resp.Data == nil {
		return []domain.UserProfile{}, "", nil
	}

	return resp.Data, "", nil
}

func (s *TaquillaService) GetInvoices(ctx context.Context) ([]domain.Invoice, error) {
	resp, err := s.Client.GetInvoices(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar faturas")
		return nil, err
	}

	if resp.Data == nil {
		return []domain.Invoice{}, nil
	}

	return resp.Data, nil
}

func (s *TaquillaService) GenerateInvoice(ctx context.Context, req domain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error) {
	resp, err := s.Client.GenerateInvoice(ctx, taquilladomain.GenerateInvoiceRequest{IDPark: req.Park, Month: req.Month})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"park": req.Park, "month": req.Month}).
			Error("Erro ao gerar fatura")
		return nil, err
	}

	return resp, nil
}
