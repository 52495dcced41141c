package listing

import (
	"context"
	"strings"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// emptyUsersPages é a contagem de páginas quando o backend responde só com mensagem
const emptyUsersPages = 1

//go:generate mockgen -source=service.go -destination=mocks/mock_lister.go -package=mocks
type Lister interface {
	FilteredTickets(ctx context.Context, user domain.SessionUser, query string, page int) (domain.Page[domain.Ticket], error)
	TicketsPages(ctx context.Context, user domain.SessionUser, query string) (int, error)
	FilteredUsers(ctx context.Context, query string, page int, status string) (domain.Page[domain.UserProfile], error)
	UsersPages(ctx context.Context, query string, status string) (int, error)
	FilteredInvoices(ctx context.Context, query string, page int) (domain.Page[domain.Invoice], error)
	InvoicesPages(ctx context.Context, query string) (int, error)
}

type Service struct {
	cfg             *config.Config
	taquillaService taquilla.TaquillaIntegrator
}

func NewService(cfg *config.Config, taquillaService taquilla.TaquillaIntegrator) Lister {
	return &Service{
		cfg:             cfg,
		taquillaService: taquillaService,
	}
}

func (s *Service) pageSize() int {
	return s.cfg.Listing.PageSize
}

func (s *Service) tickets(ctx context.Context, user domain.SessionUser, query string) ([]domain.Ticket, error) {
	tickets, err := s.taquillaService.GetTickets(ctx, user.Park)
	if err != nil {
		return nil, err
	}

	// taquillero só enxerga tickets quando busca por algo
	if user.IsTicketSeller() && strings.TrimSpace(query) == "" {
		return []domain.Ticket{}, nil
	}

	return tickets, nil
}

func (s *Service) FilteredTickets(ctx context.Context, user domain.SessionUser, query string, page int) (domain.Page[domain.Ticket], error) {
	tickets, err := s.tickets(ctx, user, query)
	if err != nil {
		return domain.Page[domain.Ticket]{}, err
	}

	return Search(tickets, query, domain.Ticket.SearchFields, page, s.pageSize()), nil
}

func (s *Service) TicketsPages(ctx context.Context, user domain.SessionUser, query string) (int, error) {
	tickets, err := s.tickets(ctx, user, query)
	if err != nil {
		return 0, err
	}

	return TotalPages(len(Filter(tickets, query, domain.Ticket.SearchFields)), s.pageSize()), nil
}

func (s *Service) FilteredUsers(ctx context.Context, query string, page int, status string) (domain.Page[domain.UserProfile], error) {
	users, message, err := s.taquillaService.GetUsers(ctx, status)
	if err != nil {
		return domain.Page[domain.UserProfile]{}, err
	}

	result := Search(users, query, domain.UserProfile.SearchFields, page, s.pageSize())
	if message != "" {
		logrus.WithField("status", status).Warn(message)
		result.TotalPages = emptyUsersPages
	}

	return result, nil
}

func (s *Service) UsersPages(ctx context.Context, query string, status string) (int, error) {
	users, message, err := s.taquillaService.GetUsers(ctx, status)
	if err != nil {
		return 0, err
	}

	if message != "" {
		logrus.WithField("status", status).Warn(message)
		return emptyUsersPages, nil
	}

	return TotalPages(len(Filter(users, query, domain.UserProfile.SearchFields)), s.pageSize()), nil
}

func (s *Service) FilteredInvoices(ctx context.Context, query string, page int) (domain.Page[domain.Invoice], error) {
	invoices, err := s.taquillaService.GetInvoices(ctx)
	if err != nil {
		return domain.Page[domain.Invoice]{}, err
	}

	return Search(invoices, query, domain.Invoice.SearchFields, page, s.pageSize()), nil
}

func (s *Service) InvoicesPages(ctx context.Context, query string) (int, error) {
	invoices, err := s.taquillaService.GetInvoices(ctx)
	if err != nil {
		return 0, err
	}

	return TotalPages(len(Filter(invoices, query, domain.Invoice.SearchFields)), s.pageSize()), nil
}
