package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// StockMovementRepository puerto del libro de movimientos. Solo inserta y lee: nunca actualiza ni borra.
type StockMovementRepository interface {
	// Create inserta el movimiento y devuelve su ID. Si Date es nil aplica el default del almacén.
	Create(ctx context.Context, movement *entity.StockMovement) (string, error)
	// ListByProduct movimientos de un producto con data_movimento >= from (si no es nil)
	// y < before (si no es nil). Solo se garantizan Kind y Quantity.
	ListByProduct(ctx context.Context, productID string, from, before *time.Time) ([]*entity.StockMovement, error)
	// ListDetailed movimientos con nombre de producto, más recientes primero.
	ListDetailed(ctx context.Context, from, before *time.Time) ([]*entity.MovementRow, error)
}
