package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/Nomina-api/docs"
	"github.com/jhoicas/Nomina-api/internal/application/auth"
	"github.com/jhoicas/Nomina-api/internal/application/commission"
	"github.com/jhoicas/Nomina-api/internal/application/inventory"
	"github.com/jhoicas/Nomina-api/internal/application/payroll"
	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/jhoicas/Nomina-api/internal/application/usecase"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/Nomina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/Nomina-api/internal/interfaces/http"
	"github.com/jhoicas/Nomina-api/pkg/config"
	"github.com/jhoicas/Nomina-api/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title          Nómina API
// @version        1.0
// @description    Punto de venta, comisiones, inventario y nómina de una cadena de tiendas.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tz", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	loc := cfg.App.Location()
	employeeRepo := postgres.NewEmployeeRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	chipRepo := postgres.NewChipSaleRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	periodRepo := postgres.NewPayrollPeriodRepository(pool)
	recordRepo := postgres.NewPayrollRecordRepository(pool)
	generalRepo := postgres.NewGeneralInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rulesUC := commission.NewRulesUseCase(
		postgres.NewCommissionRuleRepository(pool),
		postgres.NewChipTierRepository(pool),
		postgres.NewSaleTypeBonusRepository(pool),
	)
	aggregator := commission.NewAggregator(saleRepo, chipRepo, employeeRepo, rulesUC, loc)

	// PDF: tickets de venta y exportación de nómina
	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.App.Name)

	// Notificaciones: cola Redis si hay REDIS_URL, goroutine si solo hay SMTP, nada si no hay SMTP.
	var (
		notifier  sales.Notifier
		workers   *notify.WorkerPool
		async     *notify.AsyncNotifier
		rdb       *redis.Client
		limStore  limiter.Store
		notifyLog = log.Component("notify")
	)
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("REDIS_URL inválida")
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		limStore, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{Prefix: cfg.App.Name + ":ratelimit"})
		if err != nil {
			log.Fatal().Err(err).Msg("store de rate limit en Redis")
		}
	} else {
		limStore = memory.NewStore()
	}

	switch {
	case cfg.SMTP.Enabled() && rdb != nil:
		mailer := notify.NewMailer(cfg.SMTP, pdfGenerator, nil)
		workers = notify.NewWorkerPool(rdb, cfg.Redis.Queue, cfg.Redis.Workers, mailer, notifyLog)
		workers.Start(ctx)
		notifier = notify.NewDispatcher(rdb, cfg.Redis.Queue)
		log.Info().Int("workers", cfg.Redis.Workers).Str("queue", cfg.Redis.Queue).Msg("tickets por cola Redis")
	case cfg.SMTP.Enabled():
		async = notify.NewAsyncNotifier(notify.NewMailer(cfg.SMTP, pdfGenerator, nil), notifyLog)
		notifier = async
	default:
		notifier = notify.NoopNotifier{Log: notifyLog}
		log.Warn().Msg("SMTP no configurado: los tickets no se envían por correo")
	}

	loginLimiter, err := httpRouter.NewLimiter(limStore, cfg.RateLimit.Login)
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit.Login).Msg("RATE_LIMIT_LOGIN inválido")
	}

	periods := payroll.NewPeriodManager(txRunner, periodRepo)
	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
		UnescapePath: true,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nómina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, inventoryRepo, rulesUC, notifier, loc)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   usecase.NewEmployeeUseCase(employeeRepo, moduleRepo),
		ModuleUC:     usecase.NewModuleUseCase(moduleRepo),
		RulesUC:      rulesUC,
		Aggregator:   aggregator,
		SaleUC:       saleUC,
		CutUC:        sales.NewCutUseCase(saleUC, postgres.NewDailyCutRepository(pool), loc),
		ChipUC:       sales.NewChipUseCase(chipRepo, rulesUC, loc),
		InventoryUC:  inventory.NewInventoryUseCase(txRunner, inventoryRepo, movementRepo, moduleRepo),
		GeneralUC:    inventory.NewGeneralInventoryUseCase(txRunner, generalRepo, moduleRepo),
		TransferUC:   inventory.NewTransferUseCase(txRunner, transferRepo, inventoryRepo, moduleRepo),
		AttendanceUC: usecase.NewAttendanceUseCase(postgres.NewAttendanceRepository(pool), loc),
		Periods:      periods,
		PayrollUC: payroll.NewComputationUseCase(
			periods, recordRepo, employeeRepo, aggregator, spreadsheet.NewWriter(), pdfGenerator,
		),
		UploadReader: spreadsheet.ReadInventory,
		JWTSecret:    cfg.JWT.Secret,
		LoginLimiter: loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Los workers terminan el job en curso; los pendientes quedan en la cola.
	stop()
	if workers != nil {
		workers.Wait()
	}
	if async != nil {
		async.Wait()
	}

	log.Info().Msg("aplicación detenida")
}
