package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Listing.PageSize = 9
	return cfg
}

func TestService_FilteredTickets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaquilla := mocks.NewMockTaquillaIntegrator(ctrl)
	service := NewService(newTestConfig(), mockTaquilla)

	tickets := []domain.Ticket{
		{ID: "1", Name: "Ana"},
		{ID: "2", Name: "Luis"},
	}

	tests := []struct {
		name     string
		user     domain.SessionUser
		query    string
		setup    func()
		validate func(t *testing.T, page domain.Page[domain.Ticket], err error)
	}{
		{
			name:  "Admin sem busca vê todos os tickets do parque",
			user:  domain.SessionUser{Role: domain.RoleAdmin, Park: "1"},
			query: "",
			setup: func() {
				mockTaquilla.EXPECT().GetTickets(gomock.Any(), "1").Return(tickets, nil)
			},
			validate: func(t *testing.T, page domain.Page[domain.Ticket], err error) {
				require.NoError(t, err)
				assert.Len(t, page.Items, 2)
			},
		},
		{
			name:  "Taquillero sem busca não vê nada",
			user:  domain.SessionUser{Role: domain.RoleTicketSeller, Park: "2"},
			query: "  ",
			setup: func() {
				mockTaquilla.EXPECT().GetTickets(gomock.Any(), "2").Return(tickets, nil)
			},
			validate: func(t *testing.T, page domain.Page[domain.Ticket], err error) {
				require.NoError(t, err)
				assert.Empty(t, page.Items)
				assert.Equal(t, 0, page.TotalPages)
			},
		},
		{
			name:  "Taquillero com busca",
			user:  domain.SessionUser{Role: domain.RoleTicketSeller, Park: "2"},
			query: "LUI",
			setup: func() {
				mockTaquilla.EXPECT().GetTickets(gomock.Any(), "2").Return(tickets, nil)
			},
			validate: func(t *testing.T, page domain.Page[domain.Ticket], err error) {
				require.NoError(t, err)
				require.Len(t, page.Items, 1)
				assert.Equal(t, "Luis", page.Items[0].Name)
			},
		},
		{
			name:  "Erro do backend",
			user:  domain.SessionUser{Role: domain.RoleAdmin, Park: "1"},
			query: "ana",
			setup: func() {
				mockTaquilla.EXPECT().GetTickets(gomock.Any(), "1").Return(nil, errors.New("boom"))
			},
			validate: func(t *testing.T, page domain.Page[domain.Ticket], err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			page, err := service.FilteredTickets(context.Background(), tt.user, tt.query, 1)
			tt.validate(t, page, err)
		})
	}
}

func TestService_Users(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaquilla := mocks.NewMockTaquillaIntegrator(ctrl)
	service := NewService(newTestConfig(), mockTaquilla)

	t.Run("Mensagem do backend devolve lista vazia e uma página", func(t *testing.T) {
		mockTaquilla.EXPECT().GetUsers(gomock.Any(), "Eliminado").
			Return([]domain.UserProfile{}, "No hay usuarios", nil).Times(2)

		page, err := service.FilteredUsers(context.Background(), "", 1, "Eliminado")
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)

		pages, err := service.UsersPages(context.Background(), "", "Eliminado")
		require.NoError(t, err)
		assert.Equal(t, 1, pages)
	})

	t.Run("Busca por rol", func(t *testing.T) {
		users := []domain.UserProfile{
			{Name: "Ana", Role: "admin"},
			{Name: "Luis", Role: "taquillero"},
			{Name: "Sara", Role: "taquillero"},
		}
		mockTaquilla.EXPECT().GetUsers(gomock.Any(), "").Return(users, "", nil).Times(2)

		page, err := service.FilteredUsers(context.Background(), "taquill", 1, "")
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)

		pages, err := service.UsersPages(context.Background(), "taquill", "")
		require.NoError(t, err)
		assert.Equal(t, 1, pages)
	})
}

func TestService_Invoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaquilla := mocks.NewMockTaquillaIntegrator(ctrl)
	service := NewService(newTestConfig(), mockTaquilla)

	invoices := make([]domain.Invoice, 0, 12)
	for i := 0; i < 12; i++ {
		invoices = append(invoices, domain.Invoice{Month: "Enero", Total: "100"})
	}
	invoices = append(invoices, domain.Invoice{Month: "Febrero", Total: "250"})

	mockTaquilla.EXPECT().GetInvoices(gomock.Any()).Return(invoices, nil).Times(2)

	page, err := service.FilteredInvoices(context.Background(), "enero", 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 2, page.TotalPages)

	pages, err := service.InvoicesPages(context.Background(), "250")
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}
