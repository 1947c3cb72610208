package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Item línea solicitada de una remesa.
type Item struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// FinalizeInput datos de la remesa a registrar. Observation y Date son opcionales.
type FinalizeInput struct {
	Destination string
	Observation *string
	Date        *time.Time
	Items       []Item
}

// ItemFailure línea que no quedó registrada (ni ítem ni movimiento).
type ItemFailure struct {
	Position  int // 1-based, en el orden de entrada
	ProductID string
	Err       error
}

// FinalizeResult resultado de Finalize. Registered < Requested es una finalización parcial:
// la cabecera y las líneas ya escritas quedan persistidas.
type FinalizeResult struct {
	ShipmentID string
	Requested  int
	Registered int
	Failures   []ItemFailure
}

// Complete indica que todas las líneas quedaron registradas.
func (r *FinalizeResult) Complete() bool {
	return r.Registered == r.Requested
}

// FinalizeUseCase orquestador de remesas: cabecera, luego cada línea con su salida de estoque.
// Secuencial y sin transacción global; no hay compensación si una línea falla.
type FinalizeUseCase struct {
	shipmentRepo repository.ShipmentRepository
	txRunner     TxRunner
	recorder     MovementRecorder
	log          zerolog.Logger
	now          func() time.Time
}

// NewFinalizeUseCase construye el orquestador.
func NewFinalizeUseCase(
	shipmentRepo repository.ShipmentRepository,
	txRunner TxRunner,
	recorder MovementRecorder,
	log zerolog.Logger,
) *FinalizeUseCase {
	return &FinalizeUseCase{
		shipmentRepo: shipmentRepo,
		txRunner:     txRunner,
		recorder:     recorder,
		log:          log,
		now:          time.Now,
	}
}

// Finalize registra la remesa.
//
//  1. Inserta la cabecera; si falla devuelve domain.ErrShipmentHeaderFailed y no procesa líneas.
//  2. Por cada línea, en orden: inserta el ítem (subtotal = cantidad × precio) y registra un
//     movimiento saida_remessa con referencia a la remesa, en una transacción por línea.
//     Una línea fallida no detiene las siguientes.
//  3. Devuelve cuántas líneas quedaron registradas frente a las solicitadas.
func (uc *FinalizeUseCase) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	date := in.Date
	if date == nil {
		now := uc.now().UTC()
		date = &now
	}
	header := &entity.Shipment{
		ID:          uuid.New().String(),
		Destination: strings.TrimSpace(in.Destination),
		Observation: in.Observation,
		Date:        date,
	}
	shipmentID, err := uc.shipmentRepo.Create(ctx, header)
	if err != nil {
		uc.log.Error().Err(err).Str("destino", header.Destination).Msg("registrar remesa principal")
		return nil, fmt.Errorf("%w: %w", domain.ErrShipmentHeaderFailed, err)
	}

	result := &FinalizeResult{ShipmentID: shipmentID, Requested: len(in.Items)}
	observation := fmt.Sprintf("Remessa %s para %s", shortID(shipmentID), header.Destination)

	for i, it := range in.Items {
		err := uc.txRunner.Run(ctx, func(
			itemRepo repository.ShipmentItemRepository,
			movRepo repository.StockMovementRepository,
		) error {
			item := entity.NewShipmentItem(uuid.New().String(), shipmentID, it.ProductID, it.Quantity, it.UnitPrice)
			if err := itemRepo.Create(ctx, item); err != nil {
				return fmt.Errorf("insertar ítem de remesa: %w", err)
			}
			_, err := uc.recorder.RecordWith(ctx, movRepo, inventory.MovementInput{
				ProductID:      it.ProductID,
				Kind:           entity.KindSaidaRemessa,
				Quantity:       it.Quantity,
				Observation:    &observation,
				TransactionRef: &shipmentID,
				Date:           date,
			})
			return err
		})
		if err != nil {
			uc.log.Warn().Err(err).
				Str("remessa_id", shipmentID).
				Int("posicao", i+1).
				Str("produto_id", it.ProductID).
				Msg("línea de remesa no registrada")
			result.Failures = append(result.Failures, ItemFailure{Position: i + 1, ProductID: it.ProductID, Err: err})
			continue
		}
		result.Registered++
	}

	ev := uc.log.Info()
	if !result.Complete() {
		ev = uc.log.Warn()
	}
	ev.Str("remessa_id", shipmentID).
		Int("itens_registrados", result.Registered).
		Int("itens_solicitados", result.Requested).
		Msg("remesa finalizada")
	return result, nil
}

func validate(in FinalizeInput) error {
	if strings.TrimSpace(in.Destination) == "" {
		return domain.Invalid("destino", "es obligatorio")
	}
	if len(in.Items) == 0 {
		return domain.Invalid("items", "agregue al menos un ítem a la remesa")
	}
	for _, it := range in.Items {
		if it.ProductID == "" {
			return domain.Invalid("produto_id", "es obligatorio")
		}
		if err := domaininv.CheckQuantity("quantidade_remetida", it.Quantity); err != nil {
			return err
		}
		if err := domaininv.CheckPrice("preco_unitario_na_remessa", it.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
