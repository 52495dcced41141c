package main

import (
	"context"
	"database/sql"
	"flag"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	migrateTimeout    = time.Minute
	minPasswordLength = 6
)

// tabelas que pertencem a este serviço. candidato, invoices e customers são do sistema da taquilla
var statements = []string{
	`CREATE TABLE IF NOT EXISTS daily_sales_closings (
		id            VARCHAR(21) PRIMARY KEY,
		park_id       INTEGER NOT NULL,
		date          VARCHAR(32) NOT NULL,
		total_sales   NUMERIC(14, 2) NOT NULL DEFAULT 0,
		total_tickets NUMERIC(14, 0) NOT NULL DEFAULT 0,
		revenue       JSONB,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT daily_sales_closings_park_date_key UNIQUE (park_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS daily_sales_closings_date_idx ON daily_sales_closings (date DESC)`,
	`CREATE TABLE IF NOT EXISTS users (
		id       VARCHAR(21) PRIMARY KEY,
		name     VARCHAR(255) NOT NULL,
		email    VARCHAR(255) NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
}

func main() {
	adminEmail := flag.String("admin-email", "", "email do usuário local a criar (AUTH_PROVIDER=local)")
	adminPassword := flag.String("admin-password", "", "senha do usuário local")
	adminName := flag.String("admin-name", "Administrador", "nome do usuário local")
	flag.Parse()

	if strings.TrimSpace(*adminEmail) != "" && len(*adminPassword) < minPasswordLength {
		logrus.Fatalf("A senha do usuário local deve ter ao menos %d caracteres", minPasswordLength)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	logrus.Info("Iniciando migração...")

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
			logrus.Debugf("Statement %d/%d aplicado", i+1, len(statements))
		}

		if strings.TrimSpace(*adminEmail) == "" {
			return nil
		}

		return upsertLocalUser(ctx, tx, *adminName, *adminEmail, *adminPassword)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}

// upsertLocalUser grava o usuário com a senha em bcrypt. Email já existente só troca nome e senha
func upsertLocalUser(ctx context.Context, tx *sql.Tx, name, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("users").
		Columns("id", "name", "email", "password").
		Values(id, name, email, string(hash)).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, password = EXCLUDED.password").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Usuário local gravado")
	return nil
}
