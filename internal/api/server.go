package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pockiaction/taquilla-dashboard-api/internal/api/handler"
	"github.com/pockiaction/taquilla-dashboard-api/internal/api/handler/router"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/scheduler"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/candidates"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/invoicing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/listing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator    authenticating.Authenticator
	Reporter         reporting.Reporter
	Lister           listing.Lister
	CandidateService candidates.CandidateService
	InvoiceService   invoicing.InvoiceService
	DailyClosingSync *scheduler.DailyClosingSyncService
	Database         handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.DailyClosingSync != nil {
		cronServices.DailyClosingSyncService = services.DailyClosingSync
	}

	var archive handler.ClosingArchive
	if services.DailyClosingSync != nil {
		archive = services.DailyClosingSync
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Sales(services.Reporter, archive)...),
		router.WithRoutes(handler.Tickets(services.Lister)...),
		router.WithRoutes(handler.Users(services.Lister)...),
		router.WithRoutes(handler.Invoices(services.Lister, services.InvoiceService)...),
		router.WithRoutes(handler.Candidates(services.CandidateService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
