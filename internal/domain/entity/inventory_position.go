package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ubicación del snapshot de inventario.
const (
	LocationTypeWarehouse = "warehouse"
	LocationTypeStore     = "store"
)

// InventoryPosition existencias de un producto en una ubicación en el momento del snapshot.
// QuantityAvailable = on_hand - reserved (acotado a >= 0); el snapshot es una lectura
// puntual y nunca se muta durante una corrida.
type InventoryPosition struct {
	ProductID         string          `json:"product_id"`
	SKU               string          `json:"sku"`
	ProductName       string          `json:"product_name"`
	LocationID        string          `json:"location_id"`
	LocationName      string          `json:"location_name"`
	LocationType      string          `json:"location_type"` // warehouse | store
	Region            string          `json:"region"`
	QuantityOnHand    int             `json:"quantity_on_hand"`
	QuantityReserved  int             `json:"quantity_reserved"`
	QuantityAvailable int             `json:"quantity_available"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	LastUpdated       time.Time       `json:"last_updated"`
}

// TransferrableQty unidades elegibles para traslado desde esta ubicación.
// Resta lo reservado de lo disponible (que ya descuenta reservas); es el
// cálculo histórico del sistema y se conserva tal cual.
func (p InventoryPosition) TransferrableQty() int {
	return p.QuantityAvailable - p.QuantityReserved
}
