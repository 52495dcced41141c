package handler

import (
	"net/http"
	"strings"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/listing"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

const defaultPage = 1

func ListTickets(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := ticketUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		query := r.URL.Query().Get("query")
		page := utils.QueryInt(r, "page", defaultPage)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"park":  user.Park,
			"query": query,
			"page":  page,
		}).Info("INIT - ListTickets")

		result, err := service.FilteredTickets(r.Context(), user, query, page)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar tickets")
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

func TicketsPages(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := ticketUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		pages, err := service.TicketsPages(r.Context(), user, r.URL.Query().Get("query"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao contar páginas de tickets")
			return
		}

		utils.WriteJSON(w, http.StatusOK, PagesResponse{TotalPages: pages})
	}
}

func userStatus(r *http.Request) string {
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		return status
	}
	return domain.StatusEnabled
}

func ListUsers(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		page := utils.QueryInt(r, "page", defaultPage)
		status := userStatus(r)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"status": status,
			"query":  query,
			"page":   page,
		}).Info("INIT - ListUsers")

		result, err := service.FilteredUsers(r.Context(), query, page, status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuários")
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

func UsersPages(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.UsersPages(r.Context(), r.URL.Query().Get("query"), userStatus(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao contar páginas de usuários")
			return
		}

		utils.WriteJSON(w, http.StatusOK, PagesResponse{TotalPages: pages})
	}
}

func ListInvoices(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		page := utils.QueryInt(r, "page", defaultPage)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"query": query,
			"page":  page,
		}).Info("INIT - ListInvoices")

		result, err := service.FilteredInvoices(r.Context(), query, page)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar faturas")
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

func InvoicesPages(service listing.Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.InvoicesPages(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao contar páginas de faturas")
			return
		}

		utils.WriteJSON(w, http.StatusOK, PagesResponse{TotalPages: pages})
	}
}
