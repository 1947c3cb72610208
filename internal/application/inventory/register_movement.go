package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// RegisterMovementUseCase comando de la API para registrar un movimiento manual.
// Valida antes de tocar el almacén y delega la escritura en MovementRecorder.
type RegisterMovementUseCase struct {
	recorder    *MovementRecorder
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(recorder *MovementRecorder, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{recorder: recorder, productRepo: productRepo}
}

// Register valida el request (producto, tipo, cantidad > 0, fecha) y registra el movimiento.
// Devuelve el ID del movimiento creado.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (string, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return "", domain.Invalid("produto_id", "es obligatorio")
	}
	kind := strings.TrimSpace(in.Kind)
	if kind == "" {
		return "", domain.Invalid("tipo_movimento", "es obligatorio")
	}
	if err := inventory.CheckQuantity("quantidade_movimentada", in.Quantity); err != nil {
		return "", err
	}
	date, err := inventory.ParseDate("data_movimento", in.Date)
	if err != nil {
		return "", err
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return "", fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	return uc.recorder.Record(ctx, MovementInput{
		ProductID:      product.ID,
		Kind:           kind,
		Quantity:       in.Quantity,
		Observation:    optional(in.Observation),
		TransactionRef: optional(in.TransactionRef),
		Date:           date,
	})
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
