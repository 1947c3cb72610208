package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ShipmentRepository puerto de persistencia de remesas (cabecera).
type ShipmentRepository interface {
	// Create inserta la cabecera y devuelve su ID.
	Create(ctx context.Context, shipment *entity.Shipment) (string, error)
	// GetWithItems devuelve la remesa con sus líneas o nil si no existe.
	GetWithItems(ctx context.Context, id string) (*entity.ShipmentWithItems, error)
	// ListWithItems remesas en el rango (más recientes primero), cada una con sus líneas.
	ListWithItems(ctx context.Context, from, before *time.Time) ([]*entity.ShipmentWithItems, error)
}

// ShipmentItemRepository puerto de persistencia de líneas de remesa.
type ShipmentItemRepository interface {
	Create(ctx context.Context, item *entity.ShipmentItem) error
}
