package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de estoque. El signo se deriva del prefijo
// (entrada/saida) o del nombre exacto de los ajustes; ver inventory.SignOf.
const (
	KindEntradaCompra   = "entrada_compra"
	KindEntradaProducao = "entrada_producao"
	KindSaidaVenda      = "saida_venda"
	KindSaidaRemessa    = "saida_remessa"
	KindSaidaPerda      = "saida_perda"
	KindAjustePositivo  = "ajuste_positivo"
	KindAjusteNegativo  = "ajuste_negativo"
)

// MovementKinds lista los tipos ofrecidos al usuario.
var MovementKinds = []string{
	KindEntradaCompra, KindEntradaProducao,
	KindSaidaVenda, KindSaidaRemessa, KindSaidaPerda,
	KindAjustePositivo, KindAjusteNegativo,
}

// StockMovement es una fila del libro (append-only): nunca se actualiza ni se borra.
// Quantity es siempre positiva; el signo lo implica Kind.
type StockMovement struct {
	ID             string
	ProductID      string
	Kind           string
	Quantity       decimal.Decimal
	Observation    *string
	TransactionRef *string    // ej. ID de la remesa que originó la salida
	Date           *time.Time // nil al insertar = now() del almacén
}

// MovementRow movimiento con el nombre del producto (lectura detallada).
type MovementRow struct {
	StockMovement
	ProductName string
}
