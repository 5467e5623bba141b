package planning

import "github.com/shopspring/decimal"

// ResolveApprovalTier devuelve el nivel de aprobación para el gasto total
// recomendado (costo de traslados + valor de compras). La tabla se recorre de
// mayor a menor umbral con comparación estrictamente mayor: un total exacto en
// el umbral cae al nivel siguiente. El último nivel actúa como fallback.
func ResolveApprovalTier(tiers []ApprovalTier, totalValue decimal.Decimal) ApprovalTier {
	for _, tier := range tiers {
		if totalValue.GreaterThan(tier.Threshold) {
			return tier
		}
	}
	if len(tiers) > 0 {
		return tiers[len(tiers)-1]
	}
	return ApprovalTier{Level: "supervisor"}
}
