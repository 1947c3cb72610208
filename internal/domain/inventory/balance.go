package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

const (
	prefixEntrada = "entrada"
	prefixSaida   = "saida"
)

// SignOf devuelve +1, -1 o 0 según el efecto de kind sobre el saldo acumulado:
// entrada* y ajuste_positivo suman; saida* y ajuste_negativo restan; cualquier otro no cuenta.
func SignOf(kind string) int {
	switch {
	case strings.HasPrefix(kind, prefixEntrada), kind == entity.KindAjustePositivo:
		return 1
	case strings.HasPrefix(kind, prefixSaida), kind == entity.KindAjusteNegativo:
		return -1
	}
	return 0
}

// IsPeriodInflow solo el prefijo literal "entrada" cuenta como entrada del período.
// ajuste_positivo suma al saldo pero NO es entrada del período.
func IsPeriodInflow(kind string) bool {
	return strings.HasPrefix(kind, prefixEntrada)
}

// IsPeriodOutflow saida* y ajuste_negativo cuentan como salida del período.
func IsPeriodOutflow(kind string) bool {
	return strings.HasPrefix(kind, prefixSaida) || kind == entity.KindAjusteNegativo
}

// CumulativeBalance Σ entradas − Σ salidas sobre movs, según SignOf.
func CumulativeBalance(movs []*entity.StockMovement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movs {
		switch SignOf(m.Kind) {
		case 1:
			balance = balance.Add(m.Quantity)
		case -1:
			balance = balance.Sub(m.Quantity)
		}
	}
	return balance
}

// PeriodFigures suma las entradas y salidas de movs (ya filtrados por el período).
func PeriodFigures(movs []*entity.StockMovement) (inflow, outflow decimal.Decimal) {
	inflow, outflow = decimal.Zero, decimal.Zero
	for _, m := range movs {
		if IsPeriodInflow(m.Kind) {
			inflow = inflow.Add(m.Quantity)
		} else if IsPeriodOutflow(m.Kind) {
			outflow = outflow.Add(m.Quantity)
		}
	}
	return inflow, outflow
}
