package entity

import "time"

// PipelineResult salida completa de una corrida de optimización.
// Cada etapa consume la salida estructurada de la anterior; el resultado
// conserva todas para auditoría y para el reporte.
type PipelineResult struct {
	RunID       string              `json:"run_id"`
	StartedAt   time.Time           `json:"started_at"`
	FinishedAt  time.Time           `json:"finished_at"`
	Snapshot    InventorySnapshot   `json:"snapshot"`
	Warehouses  WarehouseSyncResult `json:"warehouses"`
	Stores      StoreSyncResult     `json:"stores"`
	SafetyStock SafetyStockResult   `json:"safety_stock"`
	Reorder     ReorderResult       `json:"reorder"`
	Allocation  AllocationOutcome   `json:"allocation"`
}
