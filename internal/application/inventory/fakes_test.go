package inventory_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

var errStore = errors.New("connection reset by peer")

type fakeProducts struct {
	items   []*entity.Product
	listErr error
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.items = append(f.items, p)
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

// fakeLedger libro en memoria. failOn[productID] = números de llamada (1-based) a
// ListByProduct que deben fallar para ese producto.
type fakeLedger struct {
	movs      []*entity.StockMovement
	names     map[string]string
	failOn    map[string][]int
	calls     map[string]int
	createErr error
	listCalls int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{names: map[string]string{}, failOn: map[string][]int{}, calls: map[string]int{}}
}

func (f *fakeLedger) add(productID, kind, qty, date string) {
	d, _ := time.Parse("2006-01-02", date)
	f.movs = append(f.movs, &entity.StockMovement{
		ID: productID + "-" + date + "-" + kind, ProductID: productID, Kind: kind,
		Quantity: dec(qty), Date: &d,
	})
}

func (f *fakeLedger) Create(_ context.Context, m *entity.StockMovement) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	if m.Date == nil {
		now := time.Now().UTC()
		m.Date = &now
	}
	f.movs = append(f.movs, m)
	return m.ID, nil
}

func (f *fakeLedger) ListByProduct(_ context.Context, productID string, from, before *time.Time) ([]*entity.StockMovement, error) {
	f.listCalls++
	f.calls[productID]++
	for _, n := range f.failOn[productID] {
		if n == f.calls[productID] {
			return nil, errStore
		}
	}
	var out []*entity.StockMovement
	for _, m := range f.movs {
		if m.ProductID == productID && inRange(*m.Date, from, before) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListDetailed(_ context.Context, from, before *time.Time) ([]*entity.MovementRow, error) {
	var out []*entity.MovementRow
	for _, m := range f.movs {
		if inRange(*m.Date, from, before) {
			out = append(out, &entity.MovementRow{StockMovement: *m, ProductName: f.names[m.ProductID]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(*out[j].Date) })
	return out, nil
}

func inRange(d time.Time, from, before *time.Time) bool {
	if from != nil && d.Before(*from) {
		return false
	}
	if before != nil && !d.Before(*before) {
		return false
	}
	return true
}
