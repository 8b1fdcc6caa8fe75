package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/store-admin-service/docs"
	"github.com/SergeyBogomolovv/store-admin-service/internal/app"
	"github.com/SergeyBogomolovv/store-admin-service/internal/authclient"
	"github.com/SergeyBogomolovv/store-admin-service/internal/config"
	"github.com/SergeyBogomolovv/store-admin-service/internal/handler"
	"github.com/SergeyBogomolovv/store-admin-service/internal/invoice"
	"github.com/SergeyBogomolovv/store-admin-service/internal/postgres"
	"github.com/SergeyBogomolovv/store-admin-service/internal/repo"
	"github.com/SergeyBogomolovv/store-admin-service/internal/service"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/cache"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title           Store Admin Service API
// @version         1.0
// @description     Документация HTTP API панели администратора магазина
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db, conf.Postgres.MigrationsDir))

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	defer rdb.Close()

	handler.RegisterMetrics()
	service.RegisterMetrics()

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	invoiceCache := cache.NewRedisCache(rdb, "invoice", conf.Redis.InvoiceTTL)

	var rendererOpts []invoice.RendererOption
	if conf.Invoice.FontRegular != "" {
		regular, err := os.ReadFile(conf.Invoice.FontRegular)
		panicIfErr("failed to read regular invoice font", err)
		bold, err := os.ReadFile(conf.Invoice.FontBold)
		panicIfErr("failed to read bold invoice font", err)
		rendererOpts = append(rendererOpts, invoice.WithUTF8Font(regular, bold))
	}
	renderer := invoice.NewRenderer(invoice.Seller{
		Name:        conf.Invoice.SellerName,
		ContactLine: conf.Invoice.ContactLine,
		Currency:    conf.Invoice.Currency,
		DateLayout:  conf.Invoice.DateLayout,
	}, rendererOpts...)
	authClient := authclient.New(logger, conf.Recovery)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache)
	invoiceService := service.NewInvoiceService(logger, orderService, renderer, invoiceCache)
	recoveryService := service.NewRecoveryService(logger, authClient, conf.Recovery, conf.Cors.AllowedOrigins)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewInvoiceHandler(logger, invoiceService),
		handler.NewRecoveryHandler(logger, recoveryService, conf.Recovery.AppDeepLink),
		handler.NewAdminHandler(logger, orderService),
	)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
