package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status:   "ok",
			Database: "ok",
			Time:     time.Now(),
		}
		status := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				response.Status = "degraded"
				response.Database = "unavailable"
				status = http.StatusServiceUnavailable
			}
		}

		utils.WriteJSON(w, status, response)
	})
}
