package taquillaclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	taquilladomain "github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
)

const (
	loginPath            = "/api/taquilla/loginUser"
	usersPath            = "/api/taquilla/getAllUsersTaquilla/{status}"
	ticketsPath          = "/api/marketing/getAllTicketsTwo"
	invoicesPath         = "/api/marketing/getAllInvoices"
	generateInvoicePath  = "/api/marketing/generateInovice"
	totalSalesPath       = "/api/data/totalsales"
	passportSalesPath    = "/api/data/totalsalestipepasport"
	defaultUserStatus    = domain.StatusEnabled
	maxErrorBodyInLogMsg = 512
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrBackendRequest  = errors.New("erro ao executar a requisição ao backend")
	ErrBackendResponse = errors.New("resposta inválida do backend")
)

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
type Client interface {
	Login(ctx context.Context, req taquilladomain.LoginRequest) (*taquilladomain.LoginResponse, error)
	GetSalesByPassportType(ctx context.Context, req taquilladomain.SalesRequest) (*taquilladomain.PassportSalesResponse, error)
	GetTotalSales(ctx context.Context, req taquilladomain.SalesRequest) (*taquilladomain.TotalSalesResponse, error)
	GetTickets(ctx context.Context, req taquilladomain.TicketsRequest) (*taquilladomain.ListEnvelope[domain.Ticket], error)
	GetUsers(ctx context.Context, status string) (*taquilladomain.ListEnvelope[domain.UserProfile], error)
	GetInvoices(ctx context.Context) (*taquilladomain.ListEnvelope[domain.Invoice], error)
	GenerateInvoice(ctx context.Context, req taquilladomain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error)
}

type TaquillaClient struct {
	http *resty.Client
}

// NewClient cria o cliente da API da taquilla com base URL e timeout da configuração
func NewClient(cfg *config.Config) Client {
	httpClient := resty.New().
		SetBaseURL(cfg.Backend.URL).
		SetTimeout(cfg.Backend.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &TaquillaClient{http: httpClient}
}

func (c *TaquillaClient) Login(ctx context.Context, req taquilladomain.LoginRequest) (*taquilladomain.LoginResponse, error) {
	body, err := c.do(ctx, http.MethodPost, loginPath, req, nil)
	if err != nil {
		return nil, err
	}

	var response taquilladomain.LoginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrBackendResponse, "login: %v", err)
	}

	return &response, nil
}

func (c *TaquillaClient) GetSalesByPassportType(ctx context.Context, req taquilladomain.SalesRequest) (*taquilladomain.PassportSalesResponse, error) {
	body, err := c.do(ctx, http.MethodPost, passportSalesPath, req, nil)
	if err != nil {
		return nil, err
	}

	var response taquilladomain.PassportSalesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrBackendResponse, "vendas por tipo de passaporte: %v", err)
	}

	return &response, nil
}

func (c *TaquillaClient) GetTotalSales(ctx context.Context, req taquilladomain.SalesRequest) (*taquilladomain.TotalSalesResponse, error) {
	body, err := c.do(ctx, http.MethodPost, totalSalesPath, req, nil)
	if err != nil {
		return nil, err
	}

	var response taquilladomain.TotalSalesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrBackendResponse, "vendas totais: %v", err)
	}

	return &response, nil
}

func (c *TaquillaClient) GetTickets(ctx context.Context, req taquilladomain.TicketsRequest) (*taquilladomain.ListEnvelope[domain.Ticket], error) {
	body, err := c.do(ctx, http.MethodPost, ticketsPath, req, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Ticket](body)
}

func (c *TaquillaClient) GetUsers(ctx context.Context, status string) (*taquilladomain.ListEnvelope[domain.UserProfile], error) {
	if status == "" {
		status = defaultUserStatus
	}

	body, err := c.do(ctx, http.MethodGet, usersPath, nil, map[string]string{"status": status})
	if err != nil {
		return nil, err
	}

	return decodeList[domain.UserProfile](body)
}

func (c *TaquillaClient) GetInvoices(ctx context.Context) (*taquilladomain.ListEnvelope[domain.Invoice], error) {
	body, err := c.do(ctx, http.MethodGet, invoicesPath, nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeList[domain.Invoice](body)
}

func (c *TaquillaClient) GenerateInvoice(ctx context.Context, req taquilladomain.GenerateInvoiceRequest) (domain.GeneratedInvoice, error) {
	body, err := c.do(ctx, http.MethodPost, generateInvoicePath, req, nil)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, errors.Wrap(ErrBackendResponse, "geração de fatura: corpo não é JSON")
	}

	return domain.GeneratedInvoice(body), nil
}

// do executa a requisição e devolve o corpo cru de respostas 2xx
func (c *TaquillaClient) do(ctx context.Context, method, path string, payload any, pathParams map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, errors.Wrapf(ErrBackendRequest, "%s %s: %v", method, path, err)
	}

	if resp.IsError() {
		return nil, errors.Wrapf(ErrBackendResponse, "%s %s: status %s: %s", method, path, resp.Status(), truncate(resp.Body()))
	}

	return resp.Body(), nil
}

// decodeList aceita tanto um array puro quanto o envelope {data, message}
func decodeList[T any](body []byte) (*taquilladomain.ListEnvelope[T], error) {
	trimmed := bytes.TrimSpace(body)
	envelope := &taquilladomain.ListEnvelope[T]{}

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return envelope, nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &envelope.Data); err != nil {
			return nil, errors.Wrapf(ErrBackendResponse, "lista: %v", err)
		}
		return envelope, nil
	}

	if err := json.Unmarshal(trimmed, envelope); err != nil {
		return nil, errors.Wrapf(ErrBackendResponse, "envelope: %v", err)
	}

	return envelope, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyInLogMsg {
		return string(body[:maxErrorBodyInLogMsg]) + "..."
	}
	return string(body)
}
