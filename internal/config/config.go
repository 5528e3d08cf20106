package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	Solcast            Solcast            `mapstructure:",squash"`
	Cohort             Cohort             `mapstructure:",squash"`
	Metrics            Metrics            `mapstructure:",squash"`
	SolarRankingSync   SolarRankingSync   `mapstructure:",squash"`
	ForecastCachePurge ForecastCachePurge `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// IsDevelopment indica se o serviço roda em ambiente de desenvolvimento
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development" || a.Env == "dev"
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Solcast configura o provedor de previsão fotovoltaica. APIKey é apenas o valor padrão
// usado pela API quando a requisição não traz o cabeçalho X-Solcast-Api-Key.
type Solcast struct {
	BaseURL    string        `mapstructure:"solcast_base_url"`
	APIKey     string        `mapstructure:"solcast_api_key"`
	Timeout    time.Duration `mapstructure:"solcast_timeout"`
	CapacityKW float64       `mapstructure:"solcast_capacity_kw"`
	CacheTTL   time.Duration `mapstructure:"solcast_cache_ttl"`
}

type Cohort struct {
	Source      string `mapstructure:"cohort_source"` // fixture | database
	FixturePath string `mapstructure:"cohort_fixture_path"`
	Scope       string `mapstructure:"cohort_scope"` // neighborhood | city
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

type SolarRankingSync struct {
	CronSchedule string `mapstructure:"solar_ranking_sync_cron"`
	SyncEnabled  bool   `mapstructure:"solar_ranking_sync_enabled"`
}

type ForecastCachePurge struct {
	CronSchedule string `mapstructure:"forecast_cache_purge_cron"`
	Enabled      bool   `mapstructure:"forecast_cache_purge_enabled"`
}

const (
	CohortSourceFixture  = "fixture"
	CohortSourceDatabase = "database"
)

var ErrMissingAuthSecret = errors.New("AUTH_SECRET é obrigatório fora do ambiente de desenvolvimento")

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MAX_BODY_BYTES", 1<<20)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/bill_insights?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("SOLCAST_BASE_URL", "https://api.solcast.com.au")
	viper.SetDefault("SOLCAST_API_KEY", "")
	viper.SetDefault("SOLCAST_TIMEOUT", "10s")
	viper.SetDefault("SOLCAST_CAPACITY_KW", 5)  // Capacidade assumida quando a conta não informa
	viper.SetDefault("SOLCAST_CACHE_TTL", "6h") // Séries de um período fechado mudam pouco

	viper.SetDefault("COHORT_SOURCE", CohortSourceFixture)
	viper.SetDefault("COHORT_FIXTURE_PATH", "")
	viper.SetDefault("COHORT_SCOPE", "neighborhood")

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("SOLAR_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("SOLAR_RANKING_SYNC_ENABLED", false)

	viper.SetDefault("FORECAST_CACHE_PURGE_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("FORECAST_CACHE_PURGE_ENABLED", true)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" && !c.App.IsDevelopment() {
		return ErrMissingAuthSecret
	}

	if c.Cohort.Source != CohortSourceFixture && c.Cohort.Source != CohortSourceDatabase {
		return fmt.Errorf("COHORT_SOURCE inválido: %q (use %s ou %s)", c.Cohort.Source, CohortSourceFixture, CohortSourceDatabase)
	}

	if c.Cohort.Source == CohortSourceDatabase && !c.Database.Enabled {
		return fmt.Errorf("COHORT_SOURCE=%s exige DATABASE_ENABLED=true", CohortSourceDatabase)
	}

	if c.Solcast.CapacityKW <= 0 {
		return fmt.Errorf("SOLCAST_CAPACITY_KW deve ser positivo, recebido %v", c.Solcast.CapacityKW)
	}

	return nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
