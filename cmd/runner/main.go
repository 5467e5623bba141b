// runner ejecuta una corrida completa del pipeline de optimización sin pasar
// por el servidor HTTP: extrae ventas e inventario, calcula stock de seguridad,
// reorden y traslados, crea la sumisión de aprobación y envía notificaciones.
// Pensado para correr bajo cron en entornos sin API desplegada.
//
// Uso: go run ./cmd/runner [-preview] [-out resultado.json] [-timeout 10m]
// Con -preview solo calcula; no escribe en la cola de aprobación ni notifica.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Optimizador-api/internal/application/approval"
	"github.com/jhoicas/Optimizador-api/internal/application/dto"
	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
	inframail "github.com/jhoicas/Optimizador-api/internal/infrastructure/mail"
	"github.com/jhoicas/Optimizador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Optimizador-api/pkg/config"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	preview := flag.Bool("preview", false, "solo calcular; no persistir sumisión ni notificar")
	outPath := flag.String("out", "", "archivo donde escribir el resultado JSON (por defecto stdout)")
	timeout := flag.Duration("timeout", 10*time.Minute, "tiempo máximo de la corrida completa")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Bool("preview", *preview).
		Msg("iniciando corrida de optimización")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

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

	result, err := runUC.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("corrida de optimización")
	}

	response := dto.RunOptimizationResponse{Result: result}
	if !*preview {
		submission, err := approvalUC.Submit(ctx, result.Allocation)
		if err != nil {
			log.Fatal().Err(err).Str("run_id", result.RunID).Msg("sumisión de aprobación")
		}
		notifications, err := approvalUC.Notify(ctx, submission)
		if err != nil {
			log.Fatal().Err(err).Str("submission_id", submission.SubmissionID).Msg("notificaciones")
		}
		response.Submission = submission
		response.Notifications = notifications
	}

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("serializar resultado")
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			log.Fatal().Err(err).Str("out", *outPath).Msg("escribir resultado")
		}
	} else {
		fmt.Println(string(data))
	}

	log.Info().
		Str("run_id", result.RunID).
		Int("transfers", len(result.Allocation.Transfers)).
		Int("purchase_orders", len(result.Allocation.PurchaseOrders)).
		Msg("corrida terminada")
}

// planningConfig arma la configuración de los motores a partir del entorno.
// Misma conversión que cmd/api: los niveles de servicio y la tabla de
// aprobación son fijos en el dominio.
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
