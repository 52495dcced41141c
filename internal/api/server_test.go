package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	authmocks "github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating/mocks"
	listingmocks "github.com/pockiaction/taquilla-dashboard-api/internal/usecases/listing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := authmocks.NewMockAuthenticator(ctrl)
	mockLister := listingmocks.NewMockLister(ctrl)

	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	h := NewHandler(cfg, Services{
		Authenticator: mockAuth,
		Lister:        mockLister,
	})

	admin := &domain.Claims{SessionUser: domain.SessionUser{ID: "1", Role: domain.RoleAdmin, Park: "1"}}
	seller := &domain.Claims{SessionUser: domain.SessionUser{ID: "9", Role: domain.RoleTicketSeller, Park: "2"}}

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		setup      func()
		wantStatus int
	}{
		{
			name:       "Healthcheck sem token e sem banco",
			method:     http.MethodGet,
			target:     "/healthcheck",
			setup:      func() {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota protegida sem token",
			method:     http.MethodGet,
			target:     "/v1/tickets",
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Tickets com sessão de taquillero",
			method: http.MethodGet,
			target: "/v1/tickets?query=ana",
			token:  "seller",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("seller").Return(seller, nil)
				mockLister.EXPECT().FilteredTickets(gomock.Any(), seller.SessionUser, "ana", 1).
					Return(domain.Page[domain.Ticket]{Items: []domain.Ticket{}, CurrentPage: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Usuários exigem admin",
			method: http.MethodGet,
			target: "/v1/users",
			token:  "seller",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("seller").Return(seller, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Páginas de usuários para admin",
			method: http.MethodGet,
			target: "/v1/users/pages",
			token:  "admin",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("admin").Return(admin, nil)
				mockLister.EXPECT().UsersPages(gomock.Any(), "", domain.StatusEnabled).Return(2, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Rota inexistente",
			method: http.MethodGet,
			target: "/v1/nada",
			token:  "admin",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("admin").Return(admin, nil)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}
