package entity

import "time"

// Unidades de medida conocidas. La lista es extensible: basta con agregar la unidad aquí.
var UnitMeasures = []string{"kg", "un", "litro", "metro", "caixa", "pacote", "g", "ml"}

// IsKnownUnit indica si unit está en UnitMeasures.
func IsKnownUnit(unit string) bool {
	for _, u := range UnitMeasures {
		if u == unit {
			return true
		}
	}
	return false
}

// Product representa un producto registrado. No guarda saldo: el saldo se deriva siempre
// de los movimientos (ver StockMovement). Inmutable después del registro.
type Product struct {
	ID          string
	Name        string  // único
	UnitMeasure string
	SKU         *string // opcional, único si está presente
	CreatedAt   time.Time
}
