package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bill-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast"
	"github.com/vfg2006/bill-insights-api/infrastructure/integrator/solcast/solcastclient"
	"github.com/vfg2006/bill-insights-api/infrastructure/repository"
	"github.com/vfg2006/bill-insights-api/internal/api"
	"github.com/vfg2006/bill-insights-api/internal/api/handler"
	"github.com/vfg2006/bill-insights-api/internal/config"
	"github.com/vfg2006/bill-insights-api/internal/scheduler"
	"github.com/vfg2006/bill-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/bill-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/bill-insights-api/internal/usecases/validating"
	"github.com/vfg2006/bill-insights-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if cfg.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET vazio: requisições seguem sem autenticação (apenas desenvolvimento)")
	}

	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem banco, as análises não são gravadas e o ranking gravado fica indisponível.
	// As interfaces ficam nil (e não ponteiros nil) para os serviços detectarem a ausência.
	var (
		analysisRepo     repository.AnalysisRepository
		solarRankingRepo repository.SolarRankingRepository
		pgConn           *postgres.Connection
	)
	if cfg.Database.Enabled {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		analysisRepo = repository.NewAnalysisRepository(pgConn)
		solarRankingRepo = repository.NewSolarRankingRepository(pgConn)
	} else {
		logrus.Warn("Banco de dados desabilitado: análises não serão gravadas")
	}

	solcastClient := solcastclient.NewClient(cfg)
	solcastIntegrator := solcast.New(cfg, solcastClient)

	validator, err := validating.NewService()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o schema de validação das contas")
	}

	cohort, err := cohortProvider(cfg, pgConn)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o grupo de referência")
	}

	forecaster := forecasting.NewService(solcastIntegrator)
	rankingService := ranking.NewSolarRankingService(solarRankingRepo, cohort)
	engine := insighting.NewEngine(validator, forecaster, rankingService)
	insightService := insighting.NewService(engine, analysisRepo)

	cronServices := handler.CronJobServices{}

	forecastCachePurgeService := scheduler.NewForecastCachePurgeService(solcastIntegrator, cfg)
	if err := forecastCachePurgeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache de previsão")
	} else {
		logrus.Info("Agendador de limpeza do cache de previsão iniciado com sucesso")
	}
	cronServices.ForecastCachePurgeService = forecastCachePurgeService

	if analysisRepo != nil && solarRankingRepo != nil {
		solarRankingSyncService := scheduler.NewSolarRankingSyncService(analysisRepo, solarRankingRepo, cfg)
		if err := solarRankingSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking solar")
		} else {
			logrus.Info("Agendador do ranking solar iniciado com sucesso")
		}
		cronServices.SolarRankingSyncService = solarRankingSyncService
	}

	server, err := api.New(cfg, insightService, rankingService, cronServices)
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

// cohortProvider escolhe a origem do grupo de comparação: o fixture embutido ou as análises gravadas
func cohortProvider(cfg *config.Config, conn *postgres.Connection) (ranking.CohortProvider, error) {
	if cfg.Cohort.Source == config.CohortSourceDatabase {
		logrus.Info("Grupo de referência carregado das análises gravadas")
		return repository.NewCohortRepository(conn), nil
	}

	fixture, err := ranking.NewFixtureCohort(cfg.Cohort.FixturePath)
	if err != nil {
		return nil, err
	}

	logrus.Info("Grupo de referência carregado do fixture")
	return fixture, nil
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
