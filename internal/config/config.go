package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	Restaurant    Restaurant    `mapstructure:",squash"`
	Catalog       Catalog       `mapstructure:",squash"`
	CatalogReload CatalogReload `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	// Origens permitidas para o frontend, separadas por vírgula
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Restaurant struct {
	// Deslocamento fixo (em horas) do fuso local do restaurante em relação ao UTC.
	// Usado apenas pelo canal online, que armazena timestamps em epoch UTC.
	UTCOffsetHours int `mapstructure:"restaurant_utc_offset_hours"`
}

type Catalog struct {
	// Arquivos estáticos do catálogo de produtos do PDV, um por loja
	HawthornFile string `mapstructure:"catalog_hawthorn_file"`
	RichmondFile string `mapstructure:"catalog_richmond_file"`
}

type CatalogReload struct {
	CronSchedule string `mapstructure:"catalog_reload_cron"`
	Enabled      bool   `mapstructure:"catalog_reload_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/resto_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Costa leste da Austrália (horário de verão)
	viper.SetDefault("RESTAURANT_UTC_OFFSET_HOURS", 11)

	// Relativos ao diretório do binário (main faz chdir para cmd/api)
	viper.SetDefault("CATALOG_HAWTHORN_FILE", "../../data/catalog_hawthorn.json")
	viper.SetDefault("CATALOG_RICHMOND_FILE", "../../data/catalog_richmond.json")

	viper.SetDefault("CATALOG_RELOAD_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("CATALOG_RELOAD_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Permite que o Viper leia variáveis de ambiente

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
