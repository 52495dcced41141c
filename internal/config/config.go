package config

import (
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
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Backend     Backend     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Listing     Listing     `mapstructure:",squash"`
	ClosingSync ClosingSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	MaxIdleTime  time.Duration `mapstructure:"database_max_idle_time"`
}

// Backend aponta para a API REST da taquilla (vendas, tickets, usuários, faturas)
type Backend struct {
	URL     string        `mapstructure:"backend_url"`
	Timeout time.Duration `mapstructure:"backend_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

const (
	AuthProviderBackend = "backend"
	AuthProviderLocal   = "local"
)

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
	Provider string        `mapstructure:"auth_provider"`
}

type Listing struct {
	PageSize int `mapstructure:"page_size"`
}

type ClosingSync struct {
	CronSchedule string   `mapstructure:"closing_sync_cron"`
	Enabled      bool     `mapstructure:"closing_sync_enabled"`
	Parks        []string `mapstructure:"closing_sync_parks"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/taquilla?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_TIME", "5m")

	viper.SetDefault("BACKEND_URL", "https://api.pockiaction.xyz")
	viper.SetDefault("BACKEND_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_PROVIDER", AuthProviderBackend)

	viper.SetDefault("PAGE_SIZE", 9)

	// Fechamento diário de vendas
	viper.SetDefault("CLOSING_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("CLOSING_SYNC_ENABLED", false)
	viper.SetDefault("CLOSING_SYNC_PARKS", "1,2")

	viper.SetDefault("LOG_LEVEL", "debug")
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
	if c.Backend.URL == "" {
		return fmt.Errorf("config: BACKEND_URL é obrigatório")
	}

	if c.Listing.PageSize <= 0 {
		return fmt.Errorf("config: PAGE_SIZE deve ser maior que zero, recebido %d", c.Listing.PageSize)
	}

	switch c.Auth.Provider {
	case AuthProviderBackend, AuthProviderLocal:
	default:
		return fmt.Errorf("config: AUTH_PROVIDER inválido: %q", c.Auth.Provider)
	}

	return nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
