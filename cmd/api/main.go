package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tavolagroup/resto-insights-api/infrastructure/database/postgres"
	"github.com/tavolagroup/resto-insights-api/infrastructure/repository"
	"github.com/tavolagroup/resto-insights-api/internal/api"
	"github.com/tavolagroup/resto-insights-api/internal/config"
	"github.com/tavolagroup/resto-insights-api/internal/scheduler"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/catalog"
	"github.com/tavolagroup/resto-insights-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	posRepo := repository.NewPOSSalesRepository(pgConn)
	onlineRepo := repository.NewOnlineOrdersRepository(pgConn, cfg.Restaurant.UTCOffsetHours)

	// Carrega o catálogo de produtos uma vez na subida; arquivo ausente
	// degrada para catálogo vazio, não derruba o processo
	catalogService := catalog.NewService(cfg)
	if err := catalogService.Load(); err != nil {
		logrus.WithError(err).Warn("Erro ao carregar o catálogo de produtos na inicialização")
	}

	reportService := reporting.NewService(cfg, posRepo, onlineRepo, catalogService)

	catalogReloadService := scheduler.NewCatalogReloadService(catalogService, cfg)
	if err := catalogReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do catálogo")
	}

	server, err := api.New(cfg, reportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
