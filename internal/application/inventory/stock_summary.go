package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Consultas por producto que pueden fallar de forma aislada.
const (
	QueryBalance = "saldo_acumulado"
	QueryPeriod  = "movimentos_periodo"
)

// BalanceRow saldo y cifras del período de un producto.
type BalanceRow struct {
	ProductID     string
	ProductName   string
	UnitMeasure   string
	Balance       decimal.Decimal // acumulado hasta End (ignora Start)
	PeriodInflow  decimal.Decimal
	PeriodOutflow decimal.Decimal
}

// SummaryFailure una consulta de un producto que falló; sus cifras quedaron en cero.
type SummaryFailure struct {
	ProductID   string
	ProductName string
	Query       string
	Err         error
}

// StockSummary filas por producto (sin orden garantizado) más las fallas parciales.
type StockSummary struct {
	Rows     []BalanceRow
	Failures []SummaryFailure
}

// Totals métricas clave: suma de saldos y de cifras del período.
func (s StockSummary) Totals() (balance, inflow, outflow decimal.Decimal) {
	balance, inflow, outflow = decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range s.Rows {
		balance = balance.Add(r.Balance)
		inflow = inflow.Add(r.PeriodInflow)
		outflow = outflow.Add(r.PeriodOutflow)
	}
	return balance, inflow, outflow
}

// StockSummaryUseCase agregador de saldos: deriva saldo y cifras del período desde el libro.
type StockSummaryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	log          zerolog.Logger
}

// NewStockSummaryUseCase construye el agregador.
func NewStockSummaryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	log zerolog.Logger,
) *StockSummaryUseCase {
	return &StockSummaryUseCase{productRepo: productRepo, movementRepo: movementRepo, log: log}
}

// CurrentStockSummary emite una fila por producto registrado, aunque no tenga movimientos.
//
//  1. Saldo: movimientos con fecha < End+1d (sin cota si End es nil), con signo según inventory.SignOf.
//  2. Período: movimientos en [Start, End+1d), sumados con IsPeriodInflow / IsPeriodOutflow.
//
// Si una de las dos consultas de un producto falla, esa parte queda en cero, se agrega a
// Failures y se sigue con el resto. Solo el listado de productos hace fallar la llamada.
func (uc *StockSummaryUseCase) CurrentStockSummary(ctx context.Context, period inventory.Period) (*StockSummary, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	summary := &StockSummary{Rows: make([]BalanceRow, 0, len(products))}
	balanceRange := period.UpTo()

	for _, p := range products {
		row := BalanceRow{
			ProductID:     p.ID,
			ProductName:   p.Name,
			UnitMeasure:   p.UnitMeasure,
			Balance:       decimal.Zero,
			PeriodInflow:  decimal.Zero,
			PeriodOutflow: decimal.Zero,
		}

		movs, err := uc.movementRepo.ListByProduct(ctx, p.ID, balanceRange.From(), balanceRange.Before())
		if err != nil {
			summary.fail(uc.log, p.ID, p.Name, QueryBalance, err)
		} else {
			row.Balance = inventory.CumulativeBalance(movs)
		}

		movs, err = uc.movementRepo.ListByProduct(ctx, p.ID, period.From(), period.Before())
		if err != nil {
			summary.fail(uc.log, p.ID, p.Name, QueryPeriod, err)
		} else {
			row.PeriodInflow, row.PeriodOutflow = inventory.PeriodFigures(movs)
		}

		summary.Rows = append(summary.Rows, row)
	}
	return summary, nil
}

func (s *StockSummary) fail(log zerolog.Logger, productID, productName, query string, err error) {
	log.Warn().Err(err).
		Str("produto_id", productID).
		Str("consulta", query).
		Msg("resumen de estoque: consulta de producto fallida, cifras en cero")
	s.Failures = append(s.Failures, SummaryFailure{
		ProductID:   productID,
		ProductName: productName,
		Query:       query,
		Err:         err,
	})
}
