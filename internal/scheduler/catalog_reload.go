package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tavolagroup/resto-insights-api/internal/config"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/catalog"
)

// CatalogReloadConfig representa a configuração do agendador de recarga do catálogo
type CatalogReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// CatalogReloadService gerencia a recarga periódica do catálogo de produtos.
// A recarga substitui o snapshot inteiro; requisições em andamento continuam
// lendo o snapshot anterior.
type CatalogReloadService struct {
	scheduler             *gocron.Scheduler
	config                CatalogReloadConfig
	catalogService        *catalog.Service
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
}

// NewCatalogReloadService cria uma nova instância do serviço de recarga do catálogo
func NewCatalogReloadService(
	catalogService *catalog.Service,
	appConfig *config.Config,
) *CatalogReloadService {
	reloadConfig := CatalogReloadConfig{
		CronSchedule: appConfig.CatalogReload.CronSchedule,
		Enabled:      appConfig.CatalogReload.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Serviço de recarga do catálogo criado")

	return &CatalogReloadService{
		scheduler:      scheduler,
		config:         reloadConfig,
		catalogService: catalogService,
	}
}

// Start agenda a recarga periódica. Com a recarga desabilitada apenas loga e
// retorna sem agendar nada.
func (s *CatalogReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga periódica do catálogo desabilitada")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.runReload)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	logrus.WithField("cron_schedule", s.config.CronSchedule).Info("Recarga periódica do catálogo agendada")

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop interrompe o agendador
func (s *CatalogReloadService) Stop() {
	s.scheduler.Stop()
	logrus.Info("Agendador de recarga do catálogo interrompido")
}

// runReload executa uma recarga, evitando execuções sobrepostas
func (s *CatalogReloadService) runReload() {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Warn("Recarga do catálogo ainda em execução, pulando esta rodada")
		return
	}
	s.reloadRunning = true
	s.lastReloadStartedAt = time.Now()
	s.reloadMutex.Unlock()

	defer func() {
		s.reloadMutex.Lock()
		s.reloadRunning = false
		s.lastReloadCompletedAt = time.Now()
		s.reloadMutex.Unlock()
	}()

	if err := s.catalogService.Load(); err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o catálogo de produtos")
		return
	}

	logrus.Info("Catálogo de produtos recarregado")
}
