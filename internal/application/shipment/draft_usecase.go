package shipment

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// DraftUseCase comandos sobre la remesa en preparación de una sesión y su finalización.
type DraftUseCase struct {
	store       *DraftStore
	productRepo repository.ProductRepository
	finalize    *FinalizeUseCase
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(store *DraftStore, productRepo repository.ProductRepository, finalize *FinalizeUseCase) *DraftUseCase {
	return &DraftUseCase{store: store, productRepo: productRepo, finalize: finalize}
}

// AddItem valida la línea, resuelve el producto y la agrega al borrador de la sesión.
func (uc *DraftUseCase) AddItem(ctx context.Context, session string, in dto.AddDraftItemRequest) (*dto.DraftResponse, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, domain.Invalid("produto_id", "seleccione un producto")
	}
	if err := inventory.CheckQuantity("quantidade_remetida", in.Quantity); err != nil {
		return nil, err
	}
	if err := inventory.CheckPrice("preco_unitario_na_remessa", in.UnitPrice); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	uc.store.Add(session, DraftItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	})
	return uc.Get(session), nil
}

// Get líneas del borrador con su total preliminar.
func (uc *DraftUseCase) Get(session string) *dto.DraftResponse {
	items := uc.store.Items(session)
	out := &dto.DraftResponse{Items: make([]dto.DraftItemDTO, 0, len(items)), Total: decimal.Zero}
	for _, it := range items {
		sub := it.Subtotal()
		out.Items = append(out.Items, dto.DraftItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    sub,
		})
		out.Total = out.Total.Add(sub)
	}
	return out
}

// Clear descarta el borrador de la sesión.
func (uc *DraftUseCase) Clear(session string) {
	uc.store.Clear(session)
}

// Finalize registra la remesa con las líneas del borrador. Las líneas se retiran del borrador
// al empezar; vuelven a él si la remesa falla o queda parcial. Lo agregado durante la
// finalización se conserva.
func (uc *DraftUseCase) Finalize(ctx context.Context, session string, in dto.FinalizeShipmentRequest) (*FinalizeResult, error) {
	date, err := inventory.ParseDate("data_remessa", in.Date)
	if err != nil {
		return nil, err
	}
	draft := uc.store.Take(session)
	items := make([]Item, 0, len(draft))
	for _, d := range draft {
		items = append(items, Item{ProductID: d.ProductID, Quantity: d.Quantity, UnitPrice: d.UnitPrice})
	}
	var observation *string
	if obs := strings.TrimSpace(in.Observation); obs != "" {
		observation = &obs
	}

	result, err := uc.finalize.Finalize(ctx, FinalizeInput{
		Destination: in.Destination,
		Observation: observation,
		Date:        date,
		Items:       items,
	})
	if err != nil {
		uc.store.Restore(session, draft)
		return nil, err
	}
	if !result.Complete() {
		uc.store.Restore(session, draft)
	}
	return result, nil
}
