package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla/taquillaclient"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/scheduler"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/candidates"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/invoicing"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PagesResponse é a resposta dos endpoints /pages
type PagesResponse struct {
	TotalPages int `json:"total_pages"`
}

// sessionUser devolve o usuário da sessão com o parque da query aplicado, quando informado
func sessionUser(r *http.Request) (domain.SessionUser, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return domain.SessionUser{}, false
	}

	user := claims.SessionUser
	user.Park = resolvePark(r, user.Park)
	return user, true
}

// ticketUser devolve o usuário da sessão sem sobrescrita de parque; tickets só saem do parque do token
func ticketUser(r *http.Request) (domain.SessionUser, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		return domain.SessionUser{}, false
	}
	return claims.SessionUser, true
}

// resolvePark: o parâmetro park da query tem precedência sobre o parque da sessão
func resolvePark(r *http.Request, sessionPark string) string {
	if park := strings.TrimSpace(r.URL.Query().Get("park")); park != "" {
		return park
	}
	return sessionPark
}

// writeServiceError traduz erros dos casos de uso para o código de API correspondente
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := apiErrors.CodeOf(err)

	if code == "" {
		switch {
		case errors.Is(err, taquillaclient.ErrBackendRequest),
			errors.Is(err, taquillaclient.ErrBackendResponse):
			code = apiErrors.ErrExternalService
		case errors.Is(err, reporting.ErrMalformedCount),
			errors.Is(err, reporting.ErrNegativeCount),
			errors.Is(err, reporting.ErrMalformedTotal):
			code = apiErrors.ErrMalformedData
		case errors.Is(err, candidates.ErrCandidateNotFound):
			code = apiErrors.ErrResourceNotFound
		case errors.Is(err, invoicing.ErrMissingInvoiceData):
			code = apiErrors.ErrMissingRequiredData
		case errors.Is(err, scheduler.ErrInvalidPark):
			code = apiErrors.ErrInvalidFormat
		default:
			code = apiErrors.ErrInternalServer
		}
	}

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"path":  r.URL.Path,
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.Status(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, nil)
}
