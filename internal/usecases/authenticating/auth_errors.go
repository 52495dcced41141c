package authenticating

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrInvalidRequest     = errors.New("requisição inválida")

	// falhas fora do controle do usuário
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrExternalService   = errors.New("erro no serviço de autenticação externo")
)

// AuthError carrega o código da API junto do erro base. UserID só é preenchido
// quando o usuário já foi identificado (conta desativada, senha errada no modo local).
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ErrorCode permite que apiErrors.CodeOf encontre o código atrás de wraps
func (e *AuthError) ErrorCode() string {
	return e.Code
}

// Fields devolve os campos de log do erro, sem a senha nem o token
func (e *AuthError) Fields() logrus.Fields {
	fields := logrus.Fields{"code": e.Code}
	if e.UserID != "" {
		fields["user_id"] = e.UserID
	}
	return fields
}

func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code, userID, details string) *AuthError {
	authErr := NewAuthError(baseErr, code, details)
	authErr.UserID = userID
	return authErr
}
