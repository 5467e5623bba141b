package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
	"github.com/jhoicas/Optimizador-api/internal/domain/planning"
)

// TestReorderEvaluator_RedondeoMOQyPack reproduce el caso de referencia:
// faltante 100 con MOQ 50 y pack 30 ⇒ ceil(100/30)×30 = 120 unidades.
func TestReorderEvaluator_RedondeoMOQyPack(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(ssRecord("PROD-001", 0, 100, entity.StockStatusCritical, 0, 0))
	master := map[string]entity.ProductMaster{
		"PROD-001": {
			ProductID:    "PROD-001",
			SupplierID:   "SUP-01",
			SupplierName: "Proveedor Uno",
			UnitCost:     decimal.NewFromInt(10),
			MOQ:          50,
			PackSize:     30,
			LeadTimeDays: 7,
		},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 1)

	r := result.Recommendations[0]
	assert.Equal(t, 100, r.ShortageQty)
	assert.Equal(t, 120, r.RecommendedOrderQty, "ceil(100/30)×30 = 120")
	assert.Equal(t, 0, r.RecommendedOrderQty%30, "la cantidad siempre es múltiplo del pack")
	assert.GreaterOrEqual(t, r.RecommendedOrderQty, 50, "la cantidad nunca baja del MOQ")
	assert.True(t, r.TotalOrderValue.Equal(decimal.NewFromInt(1200)), "120 × $10")
}

func TestReorderEvaluator_PisoMOQ(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	// Faltante de 3 unidades con MOQ 50 y sin pack: el MOQ manda.
	ss := safetyStockResultWith(ssRecord("PROD-002", 2, 5, entity.StockStatusCritical, 0, 0))
	master := map[string]entity.ProductMaster{
		"PROD-002": {ProductID: "PROD-002", SupplierID: "SUP-01", UnitCost: decimal.NewFromInt(4), MOQ: 50, LeadTimeDays: 7},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, 50, result.Recommendations[0].RecommendedOrderQty)
}

func TestReorderEvaluator_FiltroDeCandidatos(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(
		ssRecord("REORDENA", 10, 50, entity.StockStatusCritical, 0, 0),
		ssRecord("EXCESO", 500, 50, entity.StockStatusExcess, 0, 0),
		// Estado reordenable pero disponible por encima del ROP: la doble
		// condición lo deja fuera.
		ssRecord("INCONSISTENTE", 60, 50, entity.StockStatusAdequate, 0, 0),
	)

	result := evaluator.Evaluate(ss, map[string]entity.ProductMaster{}, testNow)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "REORDENA", result.Recommendations[0].ProductID)
}

func TestReorderEvaluator_SinCandidatosResultadoVacioExplicito(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(ssRecord("PROD-OK", 900, 50, entity.StockStatusExcess, 0, 0))
	result := evaluator.Evaluate(ss, nil, testNow)

	require.NotNil(t, result.Recommendations, "lista vacía explícita, nunca nil")
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 0, result.ItemsNeedingReorder)
	assert.True(t, result.Summary.TotalOrderValue.IsZero())
	assert.Equal(t, 0, result.Summary.TotalUnitsToOrder)
}

// TestReorderEvaluator_MaestroFaltante un candidato sin datos maestros no se
// descarta: queda marcado, con MOQ/pack 1, costo 0 y lead time por defecto.
func TestReorderEvaluator_MaestroFaltante(t *testing.T) {
	cfg := planning.DefaultConfig()
	evaluator := planning.NewReorderEvaluator(cfg)

	ss := safetyStockResultWith(ssRecord("PROD-HUERFANO", 5, 40, entity.StockStatusCritical, 0, 0))
	result := evaluator.Evaluate(ss, map[string]entity.ProductMaster{}, testNow)

	require.Len(t, result.Recommendations, 1)
	r := result.Recommendations[0]
	assert.True(t, r.MasterDataMissing, "el faltante existe aunque no haya proveedor")
	assert.Equal(t, 35, r.RecommendedOrderQty, "faltante 35 sin demanda ni safety stock")
	assert.True(t, r.UnitCost.IsZero())
	assert.True(t, r.TotalOrderValue.IsZero())
	assert.Empty(t, r.SupplierID)
	assert.Equal(t, cfg.DefaultLeadTimeDays, r.LeadTimeDays)
	assert.Equal(t, 1, result.Summary.MissingMasterData)
}

func TestReorderEvaluator_TamanoConDemandaYSafetyStock(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	// Faltante = 87-50 = 37; demanda en lead time = 10×7 = 70; ss estándar = 17.
	// raw = round(37 + 70 + 17) = 124; sin MOQ ni pack queda 124.
	ss := safetyStockResultWith(ssRecord("PROD-003", 50, 87, entity.StockStatusAdequate, 10, 17))
	master := map[string]entity.ProductMaster{
		"PROD-003": {ProductID: "PROD-003", SupplierID: "SUP-02", UnitCost: decimal.NewFromInt(2), LeadTimeDays: 7},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 1)

	r := result.Recommendations[0]
	assert.Equal(t, 37, r.ShortageQty)
	assert.Equal(t, 124, r.RecommendedOrderQty)
	assert.Equal(t, "2026-09-01", r.ExpectedDeliveryDate, "entrega = evaluación + 7 días")
}

func TestReorderEvaluator_LeadTimePorProductoSobreElDefault(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(ssRecord("PROD-004", 0, 10, entity.StockStatusCritical, 1, 0))
	master := map[string]entity.ProductMaster{
		"PROD-004": {ProductID: "PROD-004", SupplierID: "SUP-03", UnitCost: decimal.NewFromInt(1), LeadTimeDays: 21},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 1)

	r := result.Recommendations[0]
	assert.Equal(t, 21, r.LeadTimeDays, "manda el lead time del maestro, no el default")
	assert.Equal(t, 31, r.RecommendedOrderQty, "faltante 10 + demanda 1×21 + ss 0")
	assert.Equal(t, "2026-09-15", r.ExpectedDeliveryDate)
}

// TestReorderEvaluator_OrdenContractual prioridad ascendente y, dentro de la
// misma prioridad, valor de orden descendente.
func TestReorderEvaluator_OrdenContractual(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(
		ssRecord("NORMAL-CARO", 40, 80, entity.StockStatusAdequate, 0, 0),
		ssRecord("CRITICO-BARATO", 0, 40, entity.StockStatusCritical, 0, 0),
		ssRecord("LOW-MEDIO", 10, 60, entity.StockStatusLow, 0, 0),
		ssRecord("CRITICO-CARO", 0, 40, entity.StockStatusCritical, 0, 0),
	)
	master := map[string]entity.ProductMaster{
		"NORMAL-CARO":    {ProductID: "NORMAL-CARO", SupplierID: "S1", UnitCost: decimal.NewFromInt(100), LeadTimeDays: 7},
		"CRITICO-BARATO": {ProductID: "CRITICO-BARATO", SupplierID: "S2", UnitCost: decimal.NewFromInt(1), LeadTimeDays: 7},
		"LOW-MEDIO":      {ProductID: "LOW-MEDIO", SupplierID: "S3", UnitCost: decimal.NewFromInt(10), LeadTimeDays: 7},
		"CRITICO-CARO":   {ProductID: "CRITICO-CARO", SupplierID: "S4", UnitCost: decimal.NewFromInt(50), LeadTimeDays: 7},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 4)

	ids := []string{
		result.Recommendations[0].ProductID,
		result.Recommendations[1].ProductID,
		result.Recommendations[2].ProductID,
		result.Recommendations[3].ProductID,
	}
	assert.Equal(t, []string{"CRITICO-CARO", "CRITICO-BARATO", "LOW-MEDIO", "NORMAL-CARO"}, ids)

	assert.Equal(t, entity.PriorityLabelCritical, result.Recommendations[0].PriorityLabel)
	assert.Equal(t, entity.PriorityLabelHigh, result.Recommendations[2].PriorityLabel)
	assert.Equal(t, entity.PriorityLabelNormal, result.Recommendations[3].PriorityLabel)
}

func TestReorderEvaluator_Resumen(t *testing.T) {
	evaluator := planning.NewReorderEvaluator(planning.DefaultConfig())

	ss := safetyStockResultWith(
		ssRecord("A", 0, 40, entity.StockStatusCritical, 0, 0),
		ssRecord("B", 10, 60, entity.StockStatusAdequate, 0, 0),
		ssRecord("HUERFANO", 5, 30, entity.StockStatusCritical, 0, 0),
	)
	master := map[string]entity.ProductMaster{
		"A": {ProductID: "A", SupplierID: "SUP-01", UnitCost: decimal.NewFromInt(10), LeadTimeDays: 7},
		"B": {ProductID: "B", SupplierID: "SUP-01", UnitCost: decimal.NewFromInt(5), LeadTimeDays: 7},
	}

	result := evaluator.Evaluate(ss, master, testNow)
	require.Len(t, result.Recommendations, 3)

	s := result.Summary
	assert.Equal(t, 2, s.CriticalOrders)
	assert.Equal(t, 0, s.HighPriorityOrders)
	assert.Equal(t, 1, s.NormalPriorityOrders)
	assert.Equal(t, 1, s.UniqueSuppliers, "dos órdenes del mismo proveedor; el huérfano no cuenta")
	assert.Equal(t, 1, s.MissingMasterData)
	assert.Equal(t, 40+50+25, s.TotalUnitsToOrder, "faltantes puros sin demanda ni ss")
	assert.True(t, s.TotalOrderValue.Equal(decimal.NewFromInt(40*10+50*5)))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// ssRecord construye un registro de safety stock con los niveles estándar en
// ssStd y el crítico razonablemente por encima.
func ssRecord(productID string, available, reorderPoint int, status string, avgDemand float64, ssStd int) entity.SafetyStockRecord {
	return entity.SafetyStockRecord{
		ProductID:      productID,
		AvgDailyDemand: avgDemand,
		DaysOfHistory:  60,
		SafetyStockByLevel: map[string]int{
			entity.ServiceLevelStandard: ssStd,
			entity.ServiceLevelHigh:     ssStd + ssStd/2,
			entity.ServiceLevelCritical: ssStd * 2,
		},
		ReorderPoint:   reorderPoint,
		TotalAvailable: available,
		StockStatus:    status,
	}
}

func safetyStockResultWith(records ...entity.SafetyStockRecord) entity.SafetyStockResult {
	return entity.SafetyStockResult{
		CalculationTimestamp: testNow,
		ProductsAnalyzed:     len(records),
		LeadTimeDays:         7,
		Records:              records,
	}
}
