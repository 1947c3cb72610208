package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Escalas de las columnas NUMERIC: cantidades con 3 decimales, precios con 2.
// El subtotal (cantidad × precio) cabe exacto en QuantityScale+PriceScale decimales.
const (
	QuantityScale int32 = 3
	PriceScale    int32 = 2
)

// CheckQuantity cantidad > 0 y sin más decimales de los que guarda el almacén.
func CheckQuantity(field string, q decimal.Decimal) error {
	if !q.GreaterThan(decimal.Zero) {
		return domain.Invalid(field, "debe ser mayor que cero")
	}
	if !fitsScale(q, QuantityScale) {
		return domain.Invalid(field, fmt.Sprintf("admite como máximo %d decimales", QuantityScale))
	}
	return nil
}

// CheckPrice precio >= 0 y con a lo sumo PriceScale decimales.
func CheckPrice(field string, p decimal.Decimal) error {
	if p.LessThan(decimal.Zero) {
		return domain.Invalid(field, "no puede ser negativo")
	}
	if !fitsScale(p, PriceScale) {
		return domain.Invalid(field, fmt.Sprintf("admite como máximo %d decimales", PriceScale))
	}
	return nil
}

// fitsScale "1.500" cabe en escala 2; "0.333" no.
func fitsScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Truncate(scale))
}
