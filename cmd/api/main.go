package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
	inframail "github.com/jhoicas/Optimizador-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/Optimizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Optimizador-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Optimizador-api/internal/interfaces/http"
	"github.com/jhoicas/Optimizador-api/pkg/config"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	salesRepo := postgres.NewSalesHistoryRepository(pool)
	snapshotRepo := postgres.NewInventorySnapshotRepository(pool)
	masterRepo := postgres.NewProductMasterRepository(pool)
	approvalRepo := postgres.NewApprovalRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	planCfg := planningConfig(cfg.Planning)
	freshness := time.Duration(cfg.Planning.SnapshotFreshnessMinutes) * time.Minute
	runUC := optimization.NewUseCase(salesRepo, snapshotRepo, masterRepo, planCfg, freshness, log)

	notifier := inframail.NewSendGridNotifier(cfg.Mail, log)
	approvalUC := approval.NewUseCase(approvalRepo, alertRepo, notifier, planCfg, approval.Config{
		ApproverDomain:  cfg.Mail.ApproverDomain,
		InventoryTeam:   cfg.Mail.InventoryTeam,
		ExecutiveTeam:   cfg.Mail.ExecutiveTeam,
		DashboardAlerts: cfg.Mail.DashboardAlerts,
	}, log)

	// PDF: reporte ejecutivo de la última corrida de optimización
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := optimization.NewReportUseCase(runUC, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// La corrida completa lee historia de 90 días y recalcula todos los
		// motores; el timeout de escritura debe cubrirla.
		WriteTimeout: time.Minute * 2,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Optimizador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RunUC:      runUC,
		ApprovalUC: approvalUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}

// planningConfig arma la configuración de los motores a partir del entorno.
// Parte de los valores del dominio y solo sobreescribe lo ajustable; los
// niveles de servicio y la tabla de aprobación no se tocan por env var.
func planningConfig(pc config.PlanningConfig) planning.Config {
	cfg := planning.DefaultConfig()
	cfg.DefaultLeadTimeDays = pc.DefaultLeadTimeDays
	cfg.MinHistoryDays = pc.MinHistoryDays
	cfg.HistoryWindowDays = pc.HistoryWindowDays
	cfg.MinTransferQty = pc.MinTransferQty
	cfg.TargetDaysOfSupply = pc.TargetDaysOfSupply
	cfg.TransferCostPerUnit = decimal.NewFromFloat(pc.TransferCostPerUnit)
	cfg.TransferEstimatedDays = pc.TransferEstimatedDays
	cfg.TransferHubID = pc.TransferHubID
	cfg.TransferHubName = pc.TransferHubName
	cfg.AutoApproveThreshold = decimal.NewFromFloat(pc.AutoApproveThreshold)
	return cfg
}
