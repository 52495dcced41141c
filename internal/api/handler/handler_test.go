package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/taquillaclient"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/scheduler"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	reportingmocks "github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/middleware"
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminUser  = domain.SessionUser{ID: "1", Name: "Admin", Role: domain.RoleAdmin, Park: "1"}
	sellerUser = domain.SessionUser{ID: "9", Name: "Taquillero", Role: domain.RoleTicketSeller, Park: "2"}
)

// newRequest monta a requisição com a sessão e os parâmetros de rota já no contexto
func newRequest(method, target string, body string, user *domain.SessionUser, params ...httprouter.Param) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := req.Context()
	if user != nil {
		ctx = middleware.ContextWithUser(ctx, &domain.Claims{SessionUser: *user})
	}
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}

	return req.WithContext(ctx)
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestSalesHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)

	day := domain.NewAggregatedDay("Jan 1, 2024")
	day.Values[0] = decimal.NewFromInt(97200)

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		target   string
		user     *domain.SessionUser
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "Receita usa o parque da sessão",
			handler: GetPassportRevenue(mockReporter),
			target:  "/v1/sales/passports/revenue?filter=day",
			user:    &adminUser,
			setup: func() {
				mockReporter.EXPECT().PassportRevenue(gomock.Any(), "1", "day").
					Return([]*domain.AggregatedDay{day}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"Pasaporte Extremo":"97200"`)
				assert.Contains(t, rec.Body.String(), `"date":"Jan 1, 2024"`)
			},
		},
		{
			name:    "Parque da query tem precedência",
			handler: GetTotalSales(mockReporter),
			target:  "/v1/sales/total?park=2&filter=month",
			user:    &adminUser,
			setup: func() {
				mockReporter.EXPECT().TotalSales(gomock.Any(), "2", "month").
					Return([]domain.TotalSale{{Date: "2024-03", TotalSales: 10}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `[{"date":"2024-03","total_sales":10}]`, rec.Body.String())
			},
		},
		{
			name:    "Quantidade inválida vira VAL_004",
			handler: GetPassportTickets(mockReporter),
			target:  "/v1/sales/passports/tickets",
			user:    &adminUser,
			setup: func() {
				mockReporter.EXPECT().PassportTickets(gomock.Any(), "1", "").
					Return(nil, pkgerrors.Wrap(reporting.ErrMalformedCount, "pastype2"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				assert.Equal(t, apiErrors.ErrMalformedData, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:    "Falha do backend vira SRV_003",
			handler: GetSalesSummary(mockReporter),
			target:  "/v1/sales/summary",
			user:    &adminUser,
			setup: func() {
				mockReporter.EXPECT().SalesSummary(gomock.Any(), "1", "").
					Return(nil, pkgerrors.Wrapf(taquillaclient.ErrBackendRequest, "POST %s", "/api/data/totalsalestipepasport"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:    "Sem sessão",
			handler: GetSalesSummary(mockReporter),
			target:  "/v1/sales/summary",
			setup:   func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:    "Exportação XLSX",
			handler: ExportPassportRevenue(mockReporter),
			target:  "/v1/sales/passports/revenue/export",
			user:    &sellerUser,
			setup: func() {
				mockReporter.EXPECT().ExportPassportRevenue(gomock.Any(), "2", "day").
					Return([]byte("PK-xlsx"), nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "ventas_parque_2_day_")
				assert.Equal(t, "PK-xlsx", rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, newRequest(http.MethodGet, tt.target, "", tt.user))

			tt.validate(t, rec)
		})
	}
}

type fakeArchive struct {
	park  string
	limit int
	err   error
}

func (f *fakeArchive) ListClosings(ctx context.Context, park string, limit int) ([]*domain.DailySalesClosing, error) {
	f.park, f.limit = park, limit
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func TestListClosings(t *testing.T) {
	t.Run("Lista vazia e parâmetros repassados", func(t *testing.T) {
		archive := &fakeArchive{}
		rec := httptest.NewRecorder()

		ListClosings(archive).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/sales/closings?park=1&limit=5", "", &adminUser))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Equal(t, "1", archive.park)
		assert.Equal(t, 5, archive.limit)
	})

	t.Run("Parque inválido", func(t *testing.T) {
		archive := &fakeArchive{err: pkgerrors.Wrap(scheduler.ErrInvalidPark, "x")}
		rec := httptest.NewRecorder()

		ListClosings(archive).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/sales/closings?park=x", "", &adminUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Erro de banco", func(t *testing.T) {
		archive := &fakeArchive{err: errors.New("connection refused")}
		rec := httptest.NewRecorder()

		ListClosings(archive).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/sales/closings", "", &adminUser))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
