package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	claims := &domain.Claims{SessionUser: domain.SessionUser{ID: "7", Role: domain.RoleAdmin}}

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Login é público",
			path:       "/v1/login",
			setup:      func() {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Healthcheck é público",
			path:       "/healthcheck",
			setup:      func() {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem cabeçalho",
			path:       "/v1/tickets",
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingToken,
		},
		{
			name:       "Sem prefixo Bearer",
			path:       "/v1/tickets",
			header:     "Token abc",
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/tickets",
			header: "Bearer expired",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Erro sem código vira token inválido",
			path:   "/v1/tickets",
			header: "Bearer weird",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("weird").Return(nil, errors.New("falha inesperada"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token válido",
			path:   "/v1/tickets",
			header: "Bearer good",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var seen *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(mockAuth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
			if tt.header == "Bearer good" {
				require.NotNil(t, seen)
				assert.Equal(t, "7", seen.SessionUser.ID)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem sessão", claims: nil, wantStatus: http.StatusUnauthorized},
		{name: "Admin", claims: &domain.Claims{SessionUser: domain.SessionUser{Role: domain.RoleAdmin}}, wantStatus: http.StatusOK},
		{name: "Taquillero", claims: &domain.Claims{SessionUser: domain.SessionUser{Role: domain.RoleTicketSeller}}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithUser(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/tickets", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	req.Header.Set(log.CorrelationIDHeader, "req-1")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-1", correlationID)
	assert.Equal(t, "req-1", rec.Header().Get(log.CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tickets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
