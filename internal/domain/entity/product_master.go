package entity

import "github.com/shopspring/decimal"

// ProductMaster datos maestros de producto y proveedor para decisiones de compra.
// MOQ y PackSize en 0 significan "sin restricción conocida".
type ProductMaster struct {
	ProductID    string
	SupplierID   string
	SupplierName string
	UnitCost     decimal.Decimal
	MOQ          int
	PackSize     int
	LeadTimeDays int
}
