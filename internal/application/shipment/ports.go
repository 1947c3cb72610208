package shipment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a ella.
// Se usa por línea de remesa: el ítem y su movimiento saida_remessa se escriben juntos o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ShipmentItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// MovementRecorder lo implementa *inventory.MovementRecorder.
type MovementRecorder interface {
	RecordWith(ctx context.Context, repo repository.StockMovementRepository, in inventory.MovementInput) (string, error)
}

// ManifestGenerator renderiza el romaneio (PDF) de una remesa.
type ManifestGenerator interface {
	GenerateManifest(ctx context.Context, shipment *entity.ShipmentWithItems, total decimal.Decimal) ([]byte, error)
}
