package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ClosingArchive é a leitura do arquivo de fechamentos diários
type ClosingArchive interface {
	ListClosings(ctx context.Context, park string, limit int) ([]*domain.DailySalesClosing, error)
}

// salesHandler monta os handlers de relatório que só diferem na chamada ao serviço
func salesHandler[T any](name string, fetch func(ctx context.Context, parkID, filter string) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		user, ok := sessionUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := r.URL.Query().Get("filter")
		logger.WithFields(log.Fields{
			"park":   user.Park,
			"filter": filter,
		}).Infof("INIT - %s", name)

		result, err := fetch(r.Context(), user.Park, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar relatório de vendas")
			return
		}

		utils.WriteJSON(w, http.StatusOK, result)
	}
}

func GetTotalSales(service reporting.Reporter) http.HandlerFunc {
	return salesHandler("GetTotalSales", func(ctx context.Context, parkID, filter string) ([]domain.TotalSale, error) {
		return service.TotalSales(ctx, parkID, filter)
	})
}

func GetPassportRevenue(service reporting.Reporter) http.HandlerFunc {
	return salesHandler("GetPassportRevenue", func(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error) {
		return service.PassportRevenue(ctx, parkID, filter)
	})
}

func GetPassportTickets(service reporting.Reporter) http.HandlerFunc {
	return salesHandler("GetPassportTickets", func(ctx context.Context, parkID, filter string) ([]*domain.AggregatedDay, error) {
		return service.PassportTickets(ctx, parkID, filter)
	})
}

func GetSalesSummary(service reporting.Reporter) http.HandlerFunc {
	return salesHandler("GetSalesSummary", func(ctx context.Context, parkID, filter string) ([]domain.SalesSummaryDay, error) {
		return service.SalesSummary(ctx, parkID, filter)
	})
}

// ExportPassportRevenue devolve a receita por passaporte como planilha XLSX
func ExportPassportRevenue(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessionUser(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := reporting.NormalizeFilter(r.URL.Query().Get("filter"))
		log.ForContext(r.Context()).WithFields(log.Fields{
			"park":   user.Park,
			"filter": filter,
		}).Info("INIT - ExportPassportRevenue")

		content, err := service.ExportPassportRevenue(r.Context(), user.Park, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar relatório de vendas")
			return
		}

		filename := fmt.Sprintf("ventas_parque_%s_%s_%s.xlsx", user.Park, filter, time.Now().Format("20060102"))

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar planilha")
		}
	}
}

// ListClosings lista o arquivo de fechamentos. Sem park na query, lista todos os parques
func ListClosings(archive ClosingArchive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		park := r.URL.Query().Get("park")
		limit := utils.QueryInt(r, "limit", 0)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"park":  park,
			"limit": limit,
		}).Info("INIT - ListClosings")

		closings, err := archive.ListClosings(r.Context(), park, limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar fechamentos diários")
			return
		}

		if closings == nil {
			closings = []*domain.DailySalesClosing{}
		}

		utils.WriteJSON(w, http.StatusOK, closings)
	}
}
