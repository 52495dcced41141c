package domain

import (
	"bytes"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	StatusEnabled  = "Habilitado"
	StatusDisabled = "Deshabilitado"
	StatusDeleted  = "Eliminado"

	RoleAdmin        = "admin"
	RoleTicketSeller = "taquillero"
)

// FlexBool aceita true/false, 0/1 e "true"/"false" vindos do backend
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1", "t", "si", "sí":
		*b = true
	default:
		*b = false
	}
	return nil
}

// BackendUser é o usuário devolvido pelo endpoint de login da taquilla
type BackendUser struct {
	ID             NumericString `json:"id_user"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Role           string        `json:"rol"`
	Park           NumericString `json:"idpark"`
	ChangePassword FlexBool      `json:"changepassword"`
	StatusProfile  string        `json:"statusprofile"`
}

// LocalUser é a linha da tabela users do banco do dashboard
type LocalUser struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// UserProfile é o usuário da listagem de usuários da taquilla
type UserProfile struct {
	ID            NumericString `json:"id_user"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Role          string        `json:"rol"`
	StatusProfile string        `json:"statusprofile"`
	UpdatedAt     string        `json:"updated_at"`
}

// SessionUser é o usuário normalizado que vive no token de sessão
type SessionUser struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Park           string `json:"park"`
	ChangePassword bool   `json:"change_password"`
}

func (u SessionUser) IsTicketSeller() bool {
	return u.Role == RoleTicketSeller
}

type Claims struct {
	SessionUser
	jwt.RegisteredClaims
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      SessionUser `json:"user"`
}
