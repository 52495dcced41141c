package taquillaclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	taquilladomain "github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.URL = server.URL
	cfg.Backend.Timeout = 2 * time.Second

	return NewClient(cfg)
}

func TestTaquillaClient_GetSalesByPassportType(t *testing.T) {
	var received map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, passportSalesPath, r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"TotalSalesTipePasport":[{"date":"2024-03-01","id_park":1,"pastype1":"2","pastype2":3,"pastype3":"0","pastype4":null}]}`))
	})

	resp, err := client.GetSalesByPassportType(context.Background(), taquilladomain.SalesRequest{IDPark: "1", FilterType: "day"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"idPark": "1", "filterType": "day"}, received)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "2024-03-01", resp.Records[0].Date)
	assert.Equal(t, 1, resp.Records[0].ParkID)
	assert.EqualValues(t, "2", resp.Records[0].PasType1)
	assert.EqualValues(t, "3", resp.Records[0].PasType2)
	assert.EqualValues(t, "", resp.Records[0].PasType4)
}

func TestTaquillaClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "Status 500 do backend",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"boom"}`))
			},
			wantErr: ErrBackendResponse,
		},
		{
			name: "Corpo inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr: ErrBackendResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.GetTotalSales(context.Background(), taquilladomain.SalesRequest{IDPark: "1", FilterType: "day"})
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, errors.Cause(err))
		})
	}
}

func TestTaquillaClient_TransportError(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.URL = "http://127.0.0.1:1"
	cfg.Backend.Timeout = 500 * time.Millisecond

	client := NewClient(cfg)

	_, err := client.GetInvoices(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrBackendRequest, errors.Cause(err))
}

func TestTaquillaClient_GetUsers(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		body        string
		wantPath    string
		wantLen     int
		wantMessage string
	}{
		{
			name:     "Array puro",
			status:   "Deshabilitado",
			body:     `[{"id_user":7,"name":"Ana","email":"ana@x.com","rol":"admin","statusprofile":"Deshabilitado"}]`,
			wantPath: "/api/taquilla/getAllUsersTaquilla/Deshabilitado",
			wantLen:  1,
		},
		{
			name:        "Mensagem sem usuários e status padrão",
			status:      "",
			body:        `{"message":"No hay usuarios"}`,
			wantPath:    "/api/taquilla/getAllUsersTaquilla/Habilitado",
			wantLen:     0,
			wantMessage: "No hay usuarios",
		},
		{
			name:     "Envelope data",
			status:   "Habilitado",
			body:     `{"data":[{"id_user":"1","name":"Luis"},{"id_user":"2","name":"Ana"}]}`,
			wantPath: "/api/taquilla/getAllUsersTaquilla/Habilitado",
			wantLen:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.GetUsers(context.Background(), tt.status)
			require.NoError(t, err)
			assert.Len(t, resp.Data, tt.wantLen)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestTaquillaClient_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok","user":{"id_user":3,"name":"Ana","email":"ana@x.com","rol":"taquillero","idpark":"2","changepassword":1,"statusprofile":"Habilitado"}}`))
	})

	resp, err := client.Login(context.Background(), taquilladomain.LoginRequest{Email: "ana@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.EqualValues(t, "3", resp.User.ID)
	assert.EqualValues(t, "2", resp.User.Park)
	assert.True(t, bool(resp.User.ChangePassword))
}

func TestTaquillaClient_GenerateInvoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generateInvoicePath, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"idpark":"1","month":"2024-03"}`, string(body))
		_, _ = w.Write([]byte(`{"invoice":{"id":10}}`))
	})

	raw, err := client.GenerateInvoice(context.Background(), taquilladomain.GenerateInvoiceRequest{IDPark: "1", Month: "2024-03"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoice":{"id":10}}`, string(raw))
}
