package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	minEmailLength    = 3
	minPasswordLength = 6
)

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg             *config.Config
	taquillaService taquilla.TaquillaIntegrator
	userRepo        repository.UserRepository
	now             func() time.Time
}

func NewService(cfg *config.Config, taquillaService taquilla.TaquillaIntegrator, userRepo repository.UserRepository) Authenticator {
	return &Service{
		cfg:             cfg,
		taquillaService: taquillaService,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	email = handleEmail(email)

	// Validação de entrada
	if utf8.RuneCountInString(email) < minEmailLength || utf8.RuneCountInString(password) < minPasswordLength {
		return nil, NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("Email deve ter ao menos %d caracteres e senha ao menos %d", minEmailLength, minPasswordLength))
	}

	var (
		user *domain.SessionUser
		err  error
	)

	switch s.cfg.Auth.Provider {
	case config.AuthProviderLocal:
		user, err = s.loginLocal(ctx, email, password)
	default:
		user, err = s.loginBackend(ctx, email, password)
	}
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.cfg.Auth.TokenTTL)

	token, err := generateJWT(user, s.cfg.Auth.Secret, s.now(), expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{"user": user.ID, "role": user.Role}).Info("Login realizado")

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}

// loginBackend delega a verificação da senha para a API da taquilla
func (s *Service) loginBackend(ctx context.Context, email, password string) (*domain.SessionUser, error) {
	backendUser, err := s.taquillaService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, taquilla.ErrLoginRejected) {
			return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
		}
		logrus.WithError(err).Error("Falha ao consultar o backend no login")
		return nil, NewAuthError(ErrExternalService, apiErrors.ErrExternalService, "Serviço de autenticação indisponível")
	}

	switch backendUser.StatusProfile {
	case domain.StatusDisabled, domain.StatusDeleted:
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, string(backendUser.ID), "Conta "+backendUser.StatusProfile)
	}

	return &domain.SessionUser{
		ID:             string(backendUser.ID),
		Name:           backendUser.Name,
		Email:          backendUser.Email,
		Role:           backendUser.Role,
		Park:           string(backendUser.Park),
		ChangePassword: bool(backendUser.ChangePassword),
	}, nil
}

// loginLocal confere a senha contra o hash bcrypt da tabela users
func (s *Service) loginLocal(ctx context.Context, email, password string) (*domain.SessionUser, error) {
	localUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if localUser == nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(localUser.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, localUser.ID, "Email ou senha incorretos")
	}

	return &domain.SessionUser{
		ID:    localUser.ID,
		Name:  localUser.Name,
		Email: localUser.Email,
		Role:  domain.RoleAdmin,
	}, nil
}

func generateJWT(user *domain.SessionUser, secretKey string, issuedAt, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		SessionUser: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
