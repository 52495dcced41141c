package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/database/postgres"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
)

const (
	usersTable = "users"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.LocalUser, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// GetUserByEmail retorna nil, nil quando o email não existe
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.LocalUser, error) {
	query, args, err := squirrel.
		Select("id", "name", "email", "password").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.LocalUser
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
