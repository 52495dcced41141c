package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/apiErrors"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/log"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
)

// Tipos de cron job aceitos em /v1/cron/run/:type
const (
	CronJobTypeClosing = "closing"
	CronJobTypeAll     = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	DailyClosingSyncService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.DailyClosingSyncService != nil {
		jobs[CronJobTypeClosing] = s.DailyClosingSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("type", cronType).Info("INIT - RunCronJob")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: closing, all", nil)
				return
			}
			job.TriggerManualSync()
		}

		utils.WriteJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		utils.WriteJSON(w, http.StatusOK, status)
	}
}
