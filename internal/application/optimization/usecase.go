package optimization

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Optimizador-api/internal/domain"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
	"github.com/jhoicas/Optimizador-api/internal/domain/repository"
	"github.com/jhoicas/Optimizador-api/pkg/logger"
)

// UseCase ejecuta una corrida completa del pipeline: snapshot y sincronización,
// perfiles de demanda, safety stock, reorden y asignación por transferencias.
//
// La corrida es de solo lectura: no persiste nada. La sumisión a aprobación y
// las notificaciones son responsabilidad del caso de uso de aprobación.
type UseCase struct {
	salesRepo    repository.SalesHistoryRepository
	snapshotRepo repository.InventorySnapshotRepository
	masterRepo   repository.ProductMasterRepository

	profiles  *planning.DemandProfileBuilder
	safety    *planning.SafetyStockEngine
	reorder   *planning.ReorderEvaluator
	transfers *planning.TransferAllocator

	cfg               planning.Config
	snapshotFreshness time.Duration
	log               *logger.Logger
}

// NewUseCase construye el caso de uso; los motores se arman con la misma
// configuración de planeación que reciben los repos de la corrida.
func NewUseCase(
	salesRepo repository.SalesHistoryRepository,
	snapshotRepo repository.InventorySnapshotRepository,
	masterRepo repository.ProductMasterRepository,
	cfg planning.Config,
	snapshotFreshness time.Duration,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		salesRepo:         salesRepo,
		snapshotRepo:      snapshotRepo,
		masterRepo:        masterRepo,
		profiles:          planning.NewDemandProfileBuilder(cfg),
		safety:            planning.NewSafetyStockEngine(cfg),
		reorder:           planning.NewReorderEvaluator(cfg),
		transfers:         planning.NewTransferAllocator(cfg),
		cfg:               cfg,
		snapshotFreshness: snapshotFreshness,
		log:               log,
	}
}

// Run ejecuta la corrida. Un único instante UTC alimenta todas las marcas de
// tiempo de los resultados, de modo que con entradas fijas la salida solo
// difiere en los timestamps de la corrida misma.
//
// Cualquier fallo al traer datos de las fuentes aborta la corrida completa
// (envuelto en domain.ErrUpstreamFailure); nunca se calcula sobre datos
// parciales. Fuentes vacías, en cambio, producen resultados vacíos válidos.
func (uc *UseCase) Run(ctx context.Context) (*entity.PipelineResult, error) {
	started := time.Now().UTC()

	// ── Fan-out de las 3 consultas a fuentes ──────────────────────────────────
	type historyResult struct {
		rows []entity.DailyDemand
		err  error
	}
	type snapshotResult struct {
		positions []entity.InventoryPosition
		err       error
	}
	type masterResult struct {
		catalog map[string]entity.ProductMaster
		err     error
	}

	historyCh := make(chan historyResult, 1)
	snapshotCh := make(chan snapshotResult, 1)
	masterCh := make(chan masterResult, 1)

	demandSince := started.AddDate(0, 0, -uc.cfg.HistoryWindowDays)
	freshSince := started.Add(-uc.snapshotFreshness)

	go func() {
		rows, err := uc.salesRepo.GetDailyDemand(ctx, demandSince)
		historyCh <- historyResult{rows, err}
	}()
	go func() {
		positions, err := uc.snapshotRepo.GetCurrentPositions(ctx, freshSince)
		snapshotCh <- snapshotResult{positions, err}
	}()
	go func() {
		catalog, err := uc.masterRepo.GetSupplierCatalog(ctx)
		masterCh <- masterResult{catalog, err}
	}()

	history := <-historyCh
	snapshot := <-snapshotCh
	master := <-masterCh

	if history.err != nil {
		return nil, fmt.Errorf("pipeline: historial de ventas: %w: %w", domain.ErrUpstreamFailure, history.err)
	}
	if snapshot.err != nil {
		return nil, fmt.Errorf("pipeline: snapshot de inventario: %w: %w", domain.ErrUpstreamFailure, snapshot.err)
	}
	if master.err != nil {
		return nil, fmt.Errorf("pipeline: maestro de productos: %w: %w", domain.ErrUpstreamFailure, master.err)
	}

	// ── Sincronización del snapshot ───────────────────────────────────────────
	snap := BuildSnapshot(snapshot.positions, started)
	warehouses := SyncWarehouses(snapshot.positions, started)
	stores := SyncStores(snapshot.positions, started)

	uc.log.Info().
		Int("filas", snap.TotalSKUs).
		Int("ubicaciones", snap.TotalLocations).
		Int("riesgos_de_quiebre", stores.Alerts.StockoutRiskCount).
		Msg("snapshot de inventario sincronizado")

	// ── Motores de planeación ─────────────────────────────────────────────────
	stats := uc.profiles.Build(history.rows)
	safetyStock := uc.safety.Calculate(stats, TotalAvailableByProduct(snapshot.positions), started)
	reorder := uc.reorder.Evaluate(safetyStock, master.catalog, started)
	allocation := uc.transfers.Allocate(reorder, snapshot.positions, started)

	result := &entity.PipelineResult{
		RunID:       uuid.New().String(),
		StartedAt:   started,
		FinishedAt:  time.Now().UTC(),
		Snapshot:    snap,
		Warehouses:  warehouses,
		Stores:      stores,
		SafetyStock: safetyStock,
		Reorder:     reorder,
		Allocation:  allocation,
	}

	uc.log.Info().
		Str("run_id", result.RunID).
		Int("productos_analizados", safetyStock.ProductsAnalyzed).
		Int("items_criticos", safetyStock.Summary.CriticalStockItems).
		Int("ordenes_de_compra", allocation.Summary.PurchaseOrdersRecommended).
		Int("traslados", allocation.Summary.TransfersRecommended).
		Str("ahorro_por_traslados", allocation.Summary.CostSavingsFromTransfers.StringFixed(2)).
		Msg("corrida de optimización completada")

	return result, nil
}
