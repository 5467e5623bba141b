// Package planning contiene los motores puros de optimización de inventario:
// perfil de demanda, safety stock, evaluación de reorden, asignación de
// traslados y resolución de nivel de aprobación. Ninguno toca I/O ni guarda
// estado entre corridas; toda la parametrización entra por Config.
package planning

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ApprovalTier umbral de gasto con su nivel y aprobadores responsables.
// La comparación es estrictamente mayor: un total exacto en el umbral
// cae al nivel inferior.
type ApprovalTier struct {
	Level     string
	Threshold decimal.Decimal
	Approvers []string
}

// Config parámetros de los motores de planeación. Se inyecta en cada motor
// al construirlo; los tests la varían sin tocar estado global.
type Config struct {
	// ServiceLevels probabilidad objetivo por nombre de nivel de servicio.
	ServiceLevels map[string]float64

	// DefaultLeadTimeDays lead time cuando el maestro de productos no trae uno.
	DefaultLeadTimeDays int

	// MinHistoryDays días mínimos de historia para calcular estadísticas de demanda.
	MinHistoryDays int

	// HistoryWindowDays ventana hacia atrás de la historia de ventas.
	HistoryWindowDays int

	// MinTransferQty unidades mínimas para que un traslado valga la pena operativamente.
	MinTransferQty int

	// TargetDaysOfSupply días de demanda que cada ubicación origen debe conservar.
	TargetDaysOfSupply int

	// TransferCostPerUnit tarifa plana de traslado por unidad.
	TransferCostPerUnit decimal.Decimal

	// TransferEstimatedDays días estimados de tránsito de un traslado.
	TransferEstimatedDays int

	// TransferHubID y TransferHubName destino fijo de todos los traslados.
	// El sistema consolida en un hub central; no se infiere la ubicación
	// que reportó el faltante.
	TransferHubID   string
	TransferHubName string

	// AutoApproveThreshold sumisiones con valor total <= umbral se aprueban solas.
	AutoApproveThreshold decimal.Decimal

	// ApprovalTiers tabla de niveles ordenada de mayor a menor umbral.
	ApprovalTiers []ApprovalTier
}

// DefaultConfig valores de operación del sistema.
func DefaultConfig() Config {
	return Config{
		ServiceLevels: map[string]float64{
			entity.ServiceLevelStandard: 0.95,
			entity.ServiceLevelHigh:     0.99,
			entity.ServiceLevelCritical: 0.995,
		},
		DefaultLeadTimeDays:   7,
		MinHistoryDays:        30,
		HistoryWindowDays:     90,
		MinTransferQty:        10,
		TargetDaysOfSupply:    14,
		TransferCostPerUnit:   decimal.NewFromFloat(2.50),
		TransferEstimatedDays: 2,
		TransferHubID:         "warehouse_central",
		TransferHubName:       "Central Warehouse",
		AutoApproveThreshold:  decimal.NewFromInt(5000),
		ApprovalTiers: []ApprovalTier{
			{Level: "executive", Threshold: decimal.NewFromInt(100000), Approvers: []string{"vp_operations", "cfo", "ceo"}},
			{Level: "director", Threshold: decimal.NewFromInt(50000), Approvers: []string{"director_supply_chain", "director_finance"}},
			{Level: "manager", Threshold: decimal.NewFromInt(10000), Approvers: []string{"inventory_manager", "procurement_manager"}},
			{Level: "supervisor", Threshold: decimal.Zero, Approvers: []string{"inventory_supervisor"}},
		},
	}
}
