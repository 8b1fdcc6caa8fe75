package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Cache Cache `validate:"required"`

	Recovery Recovery `validate:"required"`

	Invoice Invoice `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	MigrationsDir string `validate:"required"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	InvoiceTTL time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

// Recovery describes the hosted authentication service that sends
// password-reset emails.
type Recovery struct {
	Endpoint  string `validate:"required,url"`
	ProjectID string `validate:"required"`
	APIKey    string

	Timeout time.Duration `validate:"gt=0"`

	// PublicOrigin is used for the callback link when the request origin is unknown.
	PublicOrigin string `validate:"required,url"`
	ResetPath    string `validate:"required,startswith=/"`
	AppDeepLink  string `validate:"required"`
}

type Invoice struct {
	SellerName  string `validate:"required"`
	ContactLine string `validate:"required"`
	Currency    string `validate:"required"`
	DateLayout  string `validate:"required"`

	// Пути к TTF; без них счёт печатается Helvetica и только cp1252
	FontRegular string `validate:"required_with=FontBold,omitempty,file"`
	FontBold    string `validate:"required_with=FontRegular,omitempty,file"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "store-admin-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "store"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			MigrationsDir: env("POSTGRES_MIGRATIONS_DIR", "./migrations"),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			InvoiceTTL: envDuration("REDIS_INVOICE_TTL", 24*time.Hour),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Recovery: Recovery{
			Endpoint:  env("APPWRITE_ENDPOINT", "https://cloud.appwrite.io/v1"),
			ProjectID: env("APPWRITE_PROJECT_ID", ""),
			APIKey:    env("APPWRITE_API_KEY", ""),

			Timeout: envDuration("RECOVERY_TIMEOUT", 10*time.Second),

			PublicOrigin: env("PUBLIC_ORIGIN", "http://localhost:3000"),
			ResetPath:    env("RECOVERY_RESET_PATH", "/reset-password"),
			AppDeepLink:  env("RECOVERY_APP_DEEP_LINK", "yourapp://login"),
		},

		Invoice: Invoice{
			SellerName:  env("INVOICE_SELLER_NAME", "Your Store Name"),
			ContactLine: env("INVOICE_CONTACT_LINE", "Contact us: support@example.com"),
			Currency:    env("INVOICE_CURRENCY", "Rs."),
			DateLayout:  env("INVOICE_DATE_LAYOUT", "02/01/2006"),
		FontRegular: env("INVOICE_FONT_REGULAR", ""),
		FontBold:    env("INVOICE_FONT_BOLD", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
