package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// data_movimento es opcional (YYYY-MM-DD); vacío = fecha de inserción.
type RegisterMovementRequest struct {
	ProductID      string          `json:"produto_id"`
	Kind           string          `json:"tipo_movimento"`
	Quantity       decimal.Decimal `json:"quantidade_movimentada"`
	Observation    string          `json:"observacao,omitempty"`
	TransactionRef string          `json:"referencia_transacao_id,omitempty"`
	Date           string          `json:"data_movimento,omitempty"`
}

// RegisterMovementResponse ID del movimiento creado.
type RegisterMovementResponse struct {
	ID string `json:"id"`
}

// MovementRowDTO fila del histórico detallado de movimientos.
type MovementRowDTO struct {
	ID             string          `json:"id"`
	ProductName    string          `json:"produto"`
	Kind           string          `json:"tipo"`
	Quantity       decimal.Decimal `json:"quantidade"`
	Date           *time.Time      `json:"data"`
	Observation    *string         `json:"observacao"`
	TransactionRef *string         `json:"referencia_transacao_id"`
}

// MovementHistoryResponse histórico de movimientos del período.
type MovementHistoryResponse struct {
	Items []MovementRowDTO `json:"items"`
	Total int              `json:"total"`
}

// ProductBalanceRow saldo acumulado hasta end_date y totales del período de un producto.
type ProductBalanceRow struct {
	ProductID     string          `json:"produto_id"`
	ProductName   string          `json:"nome_produto"`
	UnitMeasure   string          `json:"unidade_medida"`
	PeriodInflow  decimal.Decimal `json:"total_entradas_periodo"`
	PeriodOutflow decimal.Decimal `json:"total_saidas_periodo"`
	Balance       decimal.Decimal `json:"saldo_atual"`
}

// SummaryFailureDTO consulta fallida de un producto (sus cifras quedaron en cero).
type SummaryFailureDTO struct {
	ProductID   string `json:"produto_id"`
	ProductName string `json:"nome_produto"`
	Query       string `json:"consulta"`
	Message     string `json:"message"`
}

// SummaryTotalsDTO métricas clave del resumen.
type SummaryTotalsDTO struct {
	Products      int             `json:"produtos"`
	TotalBalance  decimal.Decimal `json:"quantidade_total"`
	PeriodInflow  decimal.Decimal `json:"entradas_periodo"`
	PeriodOutflow decimal.Decimal `json:"saidas_periodo"`
	NetPeriodMove decimal.Decimal `json:"movimento_liquido_periodo"`
}

// StockSummaryResponse respuesta de GET /api/inventory/summary.
type StockSummaryResponse struct {
	Rows     []ProductBalanceRow `json:"rows"`
	Totals   SummaryTotalsDTO    `json:"totals"`
	Failures []SummaryFailureDTO `json:"failures,omitempty"`
}
