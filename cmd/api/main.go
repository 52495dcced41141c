package main

import (
	"context"

	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/taquillaclient"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository"
	"github.com/pockiaction/taquilla-dashboard-api/internal/api"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/scheduler"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/candidates"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/invoicing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/listing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	candidateRepo := repository.NewCandidateRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	closingRepo := repository.NewDailyClosingRepository(pgConn)

	taquillaClient := taquillaclient.NewClient(cfg)
	taquillaIntegrator := taquilla.New(taquillaClient)

	authenticator := authenticating.NewService(cfg, taquillaIntegrator, userRepo)
	reporter := reporting.NewService(taquillaIntegrator)
	lister := listing.NewService(cfg, taquillaIntegrator)
	candidateService := candidates.NewService(candidateRepo)
	invoiceService := invoicing.NewService(invoiceRepo, taquillaIntegrator)

	dailyClosingSyncService := scheduler.NewDailyClosingSyncService(taquillaIntegrator, closingRepo, cfg)

	if err := dailyClosingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do fechamento diário de vendas")
	} else {
		logrus.Info("Agendador do fechamento diário de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:    authenticator,
		Reporter:         reporter,
		Lister:           lister,
		CandidateService: candidateService,
		InvoiceService:   invoiceService,
		DailyClosingSync: dailyClosingSyncService,
		Database:         pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
