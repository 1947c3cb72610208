package shipment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Textos de las filas sin datos de producto.
const (
	EmptyShipmentProduct = "N/A (sem itens)"
	missingProduct       = "N/A"
)

// HistoryUseCase lector detallado de remesas: remesa + ítems + producto, aplanado en filas.
type HistoryUseCase struct {
	repo repository.ShipmentRepository
}

// NewHistoryUseCase construye el lector.
func NewHistoryUseCase(repo repository.ShipmentRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List una fila por ítem; una remesa sin ítems produce exactamente una fila de relleno.
// Cada fila lleva el total de su remesa (suma de subtotales).
func (uc *HistoryUseCase) List(ctx context.Context, period inventory.Period) (*dto.ShipmentHistoryResponse, error) {
	shipments, err := uc.repo.ListWithItems(ctx, period.From(), period.Before())
	if err != nil {
		return nil, fmt.Errorf("listar remesas: %w", err)
	}

	out := &dto.ShipmentHistoryResponse{Rows: []dto.ShipmentRowDTO{}, Shipments: len(shipments)}
	for _, s := range shipments {
		total := s.Total()
		base := dto.ShipmentRowDTO{
			ShipmentID:    s.ID,
			Date:          s.Date,
			Destination:   s.Destination,
			Observation:   s.Observation,
			ShipmentTotal: total,
		}
		if len(s.Items) == 0 {
			row := base
			row.ProductName = EmptyShipmentProduct
			row.Quantity, row.UnitPrice, row.Subtotal = decimal.Zero, decimal.Zero, decimal.Zero
			out.Rows = append(out.Rows, row)
			continue
		}
		for _, it := range s.Items {
			row := base
			row.ProductName = it.ProductName
			row.UnitMeasure = it.UnitMeasure
			if row.ProductName == "" {
				row.ProductName, row.UnitMeasure = missingProduct, missingProduct
			}
			row.Quantity = it.Quantity
			row.UnitPrice = it.UnitPrice
			row.Subtotal = it.Subtotal
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}
