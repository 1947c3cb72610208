package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementInput campos de un movimiento a registrar. Observation, TransactionRef y Date son opcionales.
type MovementInput struct {
	ProductID      string
	Kind           string
	Quantity       decimal.Decimal
	Observation    *string
	TransactionRef *string
	Date           *time.Time
}

// MovementRecorder es la única vía de escritura del libro de movimientos.
// No valida: cantidad > 0 y producto existente los garantiza quien llama.
// No reintenta: un error del almacén vuelve al caller y el movimiento no queda registrado.
type MovementRecorder struct {
	repo repository.StockMovementRepository
	log  zerolog.Logger
}

// NewMovementRecorder construye el recorder sobre el repositorio del pool.
func NewMovementRecorder(repo repository.StockMovementRepository, log zerolog.Logger) *MovementRecorder {
	return &MovementRecorder{repo: repo, log: log}
}

// Record persiste exactamente un movimiento y devuelve su ID.
func (r *MovementRecorder) Record(ctx context.Context, in MovementInput) (string, error) {
	id, err := r.RecordWith(ctx, r.repo, in)
	if err != nil {
		return "", err
	}
	r.log.Info().
		Str("movimento_id", id).
		Str("produto_id", in.ProductID).
		Str("tipo_movimento", in.Kind).
		Str("quantidade", in.Quantity.String()).
		Msg("movimiento registrado")
	return id, nil
}

// RecordWith igual que Record pero escribe con repo (p. ej. atado a la transacción del caller).
// Solo deja traza en debug: el commit, y el log de éxito, son del caller.
func (r *MovementRecorder) RecordWith(ctx context.Context, repo repository.StockMovementRepository, in MovementInput) (string, error) {
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		Kind:           in.Kind,
		Quantity:       in.Quantity,
		Observation:    in.Observation,
		TransactionRef: in.TransactionRef,
		Date:           in.Date,
	}
	id, err := repo.Create(ctx, mov)
	if err != nil {
		r.log.Error().Err(err).
			Str("produto_id", in.ProductID).
			Str("tipo_movimento", in.Kind).
			Msg("registrar movimiento")
		return "", fmt.Errorf("registrar movimiento: %w", err)
	}
	r.log.Debug().
		Str("movimento_id", id).
		Str("produto_id", in.ProductID).
		Str("tipo_movimento", in.Kind).
		Msg("movimiento escrito")
	return id, nil
}
