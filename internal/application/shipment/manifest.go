package shipment

import (
	"context"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ManifestUseCase genera el romaneio en PDF de una remesa registrada.
type ManifestUseCase struct {
	repo      repository.ShipmentRepository
	generator ManifestGenerator
}

// NewManifestUseCase construye el caso de uso.
func NewManifestUseCase(repo repository.ShipmentRepository, generator ManifestGenerator) *ManifestUseCase {
	return &ManifestUseCase{repo: repo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si la remesa no existe.
func (uc *ManifestUseCase) Generate(ctx context.Context, shipmentID string) ([]byte, string, error) {
	s, err := uc.repo.GetWithItems(ctx, shipmentID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener remesa: %w", err)
	}
	if s == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateManifest(ctx, s, s.Total())
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("romaneio_%s.pdf", shortID(s.ID)), nil
}
