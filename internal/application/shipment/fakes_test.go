package shipment_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var errStore = errors.New("connection reset by peer")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeShipments struct {
	created   []*entity.Shipment
	createErr error
	listed    []*entity.ShipmentWithItems
	byID      map[string]*entity.ShipmentWithItems
}

func (f *fakeShipments) Create(_ context.Context, s *entity.Shipment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, s)
	return s.ID, nil
}

func (f *fakeShipments) GetWithItems(_ context.Context, id string) (*entity.ShipmentWithItems, error) {
	return f.byID[id], nil
}

func (f *fakeShipments) ListWithItems(context.Context, *time.Time, *time.Time) ([]*entity.ShipmentWithItems, error) {
	return f.listed, nil
}

// fakeItems falla en las llamadas (1-based) indicadas en failOn.
type fakeItems struct {
	items  []*entity.ShipmentItem
	calls  int
	failOn map[int]bool
}

func (f *fakeItems) Create(_ context.Context, it *entity.ShipmentItem) error {
	f.calls++
	if f.failOn[f.calls] {
		return errStore
	}
	f.items = append(f.items, it)
	return nil
}

// fakeMovements falla en las llamadas (1-based) indicadas en failOn.
type fakeMovements struct {
	movs   []*entity.StockMovement
	calls  int
	failOn map[int]bool
}

func (f *fakeMovements) Create(_ context.Context, m *entity.StockMovement) (string, error) {
	f.calls++
	if f.failOn[f.calls] {
		return "", errStore
	}
	f.movs = append(f.movs, m)
	return m.ID, nil
}

func (f *fakeMovements) ListByProduct(context.Context, string, *time.Time, *time.Time) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (f *fakeMovements) ListDetailed(context.Context, *time.Time, *time.Time) ([]*entity.MovementRow, error) {
	return nil, nil
}

// fakeTx ejecuta fn con los repos en memoria y, si fn falla, descarta lo que escribió (rollback).
// during, si no es nil, corre dentro de cada transacción antes de fn.
type fakeTx struct {
	items  *fakeItems
	movs   *fakeMovements
	runs   int
	during func()
}

func (f *fakeTx) Run(_ context.Context, fn func(repository.ShipmentItemRepository, repository.StockMovementRepository) error) error {
	f.runs++
	if f.during != nil {
		f.during()
	}
	nItems, nMovs := len(f.items.items), len(f.movs.movs)
	if err := fn(f.items, f.movs); err != nil {
		f.items.items = f.items.items[:nItems]
		f.movs.movs = f.movs.movs[:nMovs]
		return err
	}
	return nil
}

type fakeProducts struct {
	items map[string]*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.items[id], nil
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

type fakeManifest struct {
	got   *entity.ShipmentWithItems
	total decimal.Decimal
}

func (f *fakeManifest) GenerateManifest(_ context.Context, s *entity.ShipmentWithItems, total decimal.Decimal) ([]byte, error) {
	f.got, f.total = s, total
	return []byte("%PDF-1.4"), nil
}
