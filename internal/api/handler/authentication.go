package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/authenticating"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/middleware"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, response)
	}
}

// GetMe retorna o usuário da sessão, direto do token
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		utils.WriteJSON(w, http.StatusOK, userClaims.SessionUser)
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithField("error", err.Error())

	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		logger.Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
		return
	}

	logger = logger.WithFields(authErr.Fields())

	// falhas do lado do servidor não expõem detalhes ao cliente
	if apiErrors.Status(authErr.Code) >= http.StatusInternalServerError {
		logger.Error("Falha no login")
		apiErrors.WriteError(w, authErr.Code, "Serviço de autenticação indisponível", nil)
		return
	}

	if authenticating.IsCredentialsError(err) {
		logger.Info("Login recusado")
	} else {
		logger.Warn("Requisição de login inválida")
	}

	var details map[string]any
	if authErr.UserID != "" {
		details = map[string]any{"user_id": authErr.UserID}
	}
	apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
}
