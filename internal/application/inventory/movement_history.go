package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// productFallback nombre mostrado cuando el join con produtos no devuelve fila.
const productFallback = "N/A"

// MovementHistoryUseCase lectura detallada del libro (movimiento + nombre del producto).
type MovementHistoryUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementHistoryUseCase construye el lector.
func NewMovementHistoryUseCase(repo repository.StockMovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{repo: repo}
}

// List movimientos del período, más recientes primero.
func (uc *MovementHistoryUseCase) List(ctx context.Context, period inventory.Period) (*dto.MovementHistoryResponse, error) {
	rows, err := uc.repo.ListDetailed(ctx, period.From(), period.Before())
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	items := make([]dto.MovementRowDTO, 0, len(rows))
	for _, r := range rows {
		name := r.ProductName
		if name == "" {
			name = productFallback
		}
		items = append(items, dto.MovementRowDTO{
			ID:             r.ID,
			ProductName:    name,
			Kind:           r.Kind,
			Quantity:       r.Quantity,
			Date:           r.Date,
			Observation:    r.Observation,
			TransactionRef: r.TransactionRef,
		})
	}
	return &dto.MovementHistoryResponse{Items: items, Total: len(items)}, nil
}
