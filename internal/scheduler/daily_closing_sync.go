package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/integrator/taquilla"
	"github.com/pockiaction/taquilla-dashboard-api/infrastructure/repository"
	"github.com/pockiaction/taquilla-dashboard-api/internal/config"
	"github.com/pockiaction/taquilla-dashboard-api/internal/domain"
	"github.com/pockiaction/taquilla-dashboard-api/internal/usecases/reporting"
	"github.com/pockiaction/taquilla-dashboard-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const closingSyncTimeout = 5 * time.Minute

var ErrInvalidPark = errors.New("parque inválido")

// DailyClosingSyncConfig representa a configuração do fechamento diário de vendas
type DailyClosingSyncConfig struct {
	CronSchedule string
	Parks        []string
	SyncEnabled  bool
}

// DailyClosingSyncService arquiva o fechamento diário de vendas de cada parque
type DailyClosingSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyClosingSyncConfig
	taquillaService     taquilla.TaquillaIntegrator
	closingRepo         repository.DailyClosingRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDailyClosingSyncService(
	taquillaService taquilla.TaquillaIntegrator,
	closingRepo repository.DailyClosingRepository,
	appConfig *config.Config,
) *DailyClosingSyncService {
	closingConfig := DailyClosingSyncConfig{
		CronSchedule: appConfig.ClosingSync.CronSchedule,
		Parks:        appConfig.ClosingSync.Parks,
		SyncEnabled:  appConfig.ClosingSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": closingConfig.CronSchedule,
		"parks":         closingConfig.Parks,
		"sync_enabled":  closingConfig.SyncEnabled,
	}).Info("Configuração do fechamento diário de vendas carregada")

	return &DailyClosingSyncService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          closingConfig,
		taquillaService: taquillaService,
		closingRepo:     closingRepo,
	}
}

// Start inicia o agendador
func (s *DailyClosingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fechamento diário de vendas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do fechamento diário de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncClosings()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fechamento diário de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do fechamento diário de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailyClosingSyncService) syncClosings() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), closingSyncTimeout)
	defer cancel()

	err := s.SyncClosings(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()
}

// SyncClosings busca as vendas por dia de cada parque configurado e grava um fechamento por data.
// Um parque com falha não interrompe os demais; os erros são devolvidos juntos.
func (s *DailyClosingSyncService) SyncClosings(ctx context.Context) error {
	startTime := time.Now()
	logrus.WithField("parks", s.config.Parks).Info("Iniciando fechamento diário de vendas")

	var errs []error
	saved := 0

	for _, park := range s.config.Parks {
		park = strings.TrimSpace(park)
		if park == "" {
			continue
		}

		closings, err := s.buildParkClosings(ctx, park)
		if err != nil {
			logrus.WithError(err).WithField("park", park).Error("Erro ao calcular fechamento do parque")
			errs = append(errs, err)
			continue
		}

		if err := s.closingRepo.SaveOrUpdate(ctx, closings); err != nil {
			logrus.WithError(err).WithField("park", park).Error("Erro ao salvar fechamento do parque")
			errs = append(errs, err)
			continue
		}

		saved += len(closings)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"closings": saved,
		"errors":   len(errs),
	}).Info("Fechamento diário de vendas concluído")

	return errors.Join(errs...)
}

func (s *DailyClosingSyncService) buildParkClosings(ctx context.Context, park string) ([]*domain.DailySalesClosing, error) {
	parkID, err := strconv.Atoi(park)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPark, park, err)
	}

	records, err := s.taquillaService.GetPassportSales(ctx, park, domain.FilterDay)
	if err != nil {
		return nil, err
	}

	// filtro vazio mantém a data crua como rótulo
	revenue, err := reporting.AggregateRevenue(records, "")
	if err != nil {
		return nil, err
	}

	summary, err := reporting.AggregateSummary(records, "")
	if err != nil {
		return nil, err
	}

	closings := make([]*domain.DailySalesClosing, 0, len(revenue))
	for i, day := range revenue {
		totalSales := decimal.Zero
		for _, value := range day.Values {
			totalSales = totalSales.Add(value)
		}

		closings = append(closings, &domain.DailySalesClosing{
			ParkID:       parkID,
			Date:         utils.DateOnly(day.Date),
			TotalSales:   totalSales,
			TotalTickets: decimal.NewFromFloat(summary[i].TotalTickets),
			Revenue:      day,
		})
	}

	return closings, nil
}

// ListClosings devolve o arquivo de fechamentos. park vazio lista todos os parques
func (s *DailyClosingSyncService) ListClosings(ctx context.Context, park string, limit int) ([]*domain.DailySalesClosing, error) {
	parkID := 0
	if park = strings.TrimSpace(park); park != "" {
		var err error
		parkID, err = strconv.Atoi(park)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPark, park, err)
		}
	}

	return s.closingRepo.List(ctx, parkID, limit)
}

// TriggerManualSync inicia manualmente o fechamento diário de vendas
func (s *DailyClosingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fechamento diário de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fechamento diário de vendas manual")
	go s.syncClosings()
}

// GetStatus retorna o status atual do agendador
func (s *DailyClosingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_parks":             s.config.Parks,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
