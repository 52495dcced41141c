package handler

import (
	"net/http"

	"github.com/pockiaction/taquilla-dashboard-api/internal/api/handler/router"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/candidates"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/invoicing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/listing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Sales(service reporting.Reporter, archive ClosingArchive) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/total",
			Method:      http.MethodGet,
			Handler:     GetTotalSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/passports/revenue",
			Method:      http.MethodGet,
			Handler:     GetPassportRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/passports/revenue/export",
			Method:      http.MethodGet,
			Handler:     ExportPassportRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/passports/tickets",
			Method:      http.MethodGet,
			Handler:     GetPassportTickets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/summary",
			Method:      http.MethodGet,
			Handler:     GetSalesSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/closings",
			Method:      http.MethodGet,
			Handler:     ListClosings(archive),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Tickets(service listing.Lister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tickets",
			Method:      http.MethodGet,
			Handler:     ListTickets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/tickets/pages",
			Method:      http.MethodGet,
			Handler:     TicketsPages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Users(service listing.Lister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/pages",
			Method:      http.MethodGet,
			Handler:     UsersPages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Invoices(lister listing.Lister, service invoicing.InvoiceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListInvoices(lister),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/invoices/pages",
			Method:      http.MethodGet,
			Handler:     InvoicesPages(lister),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/cards/invoices",
			Method:      http.MethodGet,
			Handler:     GetInvoiceCards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/invoices/generate",
			Method:      http.MethodPost,
			Handler:     GenerateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Candidates(service candidates.CandidateService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cards/candidates",
			Method:      http.MethodGet,
			Handler:     GetCandidateCards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/candidates/:id",
			Method:      http.MethodGet,
			Handler:     GetCandidate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
