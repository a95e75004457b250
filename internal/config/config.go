package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig         `validate:"required"`
	Database       DatabaseConfig       `validate:"required"`
	Ledger         LedgerConfig         `validate:"required"`
	Classification ClassificationConfig `validate:"required"`
	Budget         BudgetConfig         `validate:"required"`
}

type ServerConfig struct {
	Port               string `validate:"required,numeric"`
	Host               string
	Environment        string `validate:"oneof=development production testing"`
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowOrigins   []string
	RateLimitPerSecond int   `validate:"gte=1"`
	RateLimitBurst     int   `validate:"gte=1"`
	MaxUploadBytes     int64 `validate:"gte=1024"`
	PreviewRows        int   `validate:"gte=1,lte=10000"`
}

type DatabaseConfig struct {
	Driver          string `validate:"oneof=sqlite postgres"`
	SQLitePath      string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LedgerConfig names the columns of the uploaded ledger.
type LedgerConfig struct {
	MemoField     string `validate:"required"`
	LineItemField string `validate:"required"`
	AmountField   string `validate:"required"`
	DateField     string `validate:"required"`
	SheetName     string
	OutputColumns []string `validate:"required,min=1,dive,required"`
}

// ClassificationConfig drives the memo-prefix split.
type ClassificationConfig struct {
	BusinessPrefix        string  `validate:"required"`
	ResearchPrefix        string  `validate:"required"`
	UnclassifiedThreshold float64 `validate:"gte=0,lte=1"`
}

// BudgetConfig selects the taxonomy file and fiscal year.
type BudgetConfig struct {
	TaxonomyPath string
	FiscalYear   string `validate:"required,len=4,numeric"`
}

// LoadEnvFile loads KEY=VALUE pairs from path (or .env when path is empty)
// without overriding variables already set in the environment.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			MaxUploadBytes:     int64(getIntEnv("MAX_UPLOAD_BYTES", 32<<20)),
			PreviewRows:        getIntEnv("PREVIEW_ROWS", 100),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "budget_ledger.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "budget_ledger"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Ledger: LedgerConfig{
			MemoField:     getEnv("LEDGER_MEMO_FIELD", "적요"),
			LineItemField: getEnv("LEDGER_LINE_ITEM_FIELD", "예산과목"),
			AmountField:   getEnv("LEDGER_AMOUNT_FIELD", "총지급액"),
			DateField:     getEnv("LEDGER_DATE_FIELD", "발의일자"),
			SheetName:     getEnv("LEDGER_SHEET_NAME", ""),
			OutputColumns: getListEnv("LEDGER_OUTPUT_COLUMNS", []string{"결의서", "발의일자", "번호", "적요", "작성자", "총지급액", "예산과목"}),
		},
		Classification: ClassificationConfig{
			BusinessPrefix:        getEnv("BUSINESS_PREFIX", "25 차세대"),
			ResearchPrefix:        getEnv("RESEARCH_PREFIX", "25 심층연구"),
			UnclassifiedThreshold: getFloatEnv("UNCLASSIFIED_WARNING_THRESHOLD", 0.7),
		},
		Budget: BudgetConfig{
			TaxonomyPath: getEnv("TAXONOMY_PATH", ""),
			FiscalYear:   getEnv("FISCAL_YEAR", "2025"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

// Validate checks the loaded configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			details := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				details = append(details, fmt.Sprintf("%s failed '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(details, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// AutoMigrateEnabled reports whether SQL migrations should run at startup.
func AutoMigrateEnabled() bool {
	return getBoolEnv("AUTO_MIGRATE", false)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins.")
		}
		return []string{"*"}
	}

	origins := getListEnv("CORS_ALLOW_ORIGINS", nil)
	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
