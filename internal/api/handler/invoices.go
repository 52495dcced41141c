package handler

import (
	"net/http"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/invoicing"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

func GetInvoiceCards(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetInvoiceCards")

		cards, err := service.GetCards(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar os cards de faturas")
			return
		}

		utils.WriteJSON(w, http.StatusOK, cards)
	}
}

// GenerateInvoice repassa a resposta do backend sem transformação
func GenerateInvoice(service invoicing.InvoiceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GenerateInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"park":  req.Park,
			"month": req.Month,
		}).Info("INIT - GenerateInvoice")

		invoice, err := service.Generate(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar fatura")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(invoice); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar fatura gerada")
		}
	}
}
