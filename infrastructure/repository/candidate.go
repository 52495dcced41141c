package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
)

const (
	candidateTable = "candidato"
)

//go:generate mockgen -source=candidate.go -destination=mocks/mock_candidate.go -package=mocks
type CandidateRepository interface {
	// Count conta candidatos. group vazio não filtra por grupo, status vazio não filtra por estado
	Count(ctx context.Context, group, status string) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)
}

type candidateRepository struct {
	conn postgres.Queryer
}

func NewCandidateRepository(conn postgres.Queryer) CandidateRepository {
	return &candidateRepository{
		conn: conn,
	}
}

func (r *candidateRepository) Count(ctx context.Context, group, status string) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(candidateTable).
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"estado_proceso": status})
	}

	if group != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"grupo": group})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar candidatos: %w", err)
	}

	return count, nil
}

// candidateByIDQuery monta o SELECT de um candidato. estadoCandidato vai sem aspas: o postgres
// dobra para minúsculas, igual à coluna criada pelo sistema da taquilla
func candidateByIDQuery(id string) (string, []interface{}, error) {
	return squirrel.
		Select(
			"id",
			"tipoid",
			"nombre",
			"celular",
			"cargo",
			"correo",
			"motivo",
			"estado_proceso",
			"fecha_envio",
			"fecha_ingreso",
			"grupo",
			"estadoCandidato",
			"user_creo",
		).
		From(candidateTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query, args, err := candidateByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var candidate domain.Candidate
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&candidate.ID,
		&candidate.IDType,
		&candidate.Name,
		&candidate.Phone,
		&candidate.Position,
		&candidate.Email,
		&candidate.Reason,
		&candidate.ProcessStatus,
		&candidate.SentAt,
		&candidate.JoinedAt,
		&candidate.Group,
		&candidate.CandidateStatus,
		&candidate.CreatedBy,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar candidato %s: %w", id, err)
	}

	return &candidate, nil
}
