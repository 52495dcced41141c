package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/candidates"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

func GetCandidateCards(service candidates.CandidateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group := r.URL.Query().Get("group")
		log.ForContext(r.Context()).WithField("group", group).Info("INIT - GetCandidateCards")

		cards, err := service.GetCards(r.Context(), group)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar os cards de candidatos")
			return
		}

		utils.WriteJSON(w, http.StatusOK, cards)
	}
}

func GetCandidate(service candidates.CandidateService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do candidato não fornecido", nil)
			return
		}

		log.ForContext(r.Context()).WithField("candidate_id", id).Info("INIT - GetCandidate")

		candidate, err := service.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Candidato não encontrado")
			return
		}

		utils.WriteJSON(w, http.StatusOK, candidate)
	}
}
