package shipment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/shipment"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func view(name string, qty, price string) entity.ShipmentItemView {
	it := entity.NewShipmentItem("i-"+name, "s", "p-"+name, dec(qty), dec(price))
	return entity.ShipmentItemView{ShipmentItem: *it, ProductName: name, UnitMeasure: "un"}
}

func TestHistory_FilasAplanadas(t *testing.T) {
	d := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeShipments{listed: []*entity.ShipmentWithItems{
		{
			Shipment: entity.Shipment{ID: "s1", Destination: "Filial", Date: &d},
			Items:    []entity.ShipmentItemView{view("Farinha", "2", "5"), view("Ovos", "3", "1")},
		},
		{Shipment: entity.Shipment{ID: "s2", Destination: "Loja", Date: &d}},
	}}

	out, err := shipment.NewHistoryUseCase(repo).List(context.Background(), inventory.Period{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Shipments)
	require.Len(t, out.Rows, 3)
	for _, r := range out.Rows[:2] {
		assert.Equal(t, "s1", r.ShipmentID)
		assert.True(t, r.ShipmentTotal.Equal(dec("13")))
	}
	assert.True(t, out.Rows[0].Subtotal.Equal(dec("10")))

	empty := out.Rows[2]
	assert.Equal(t, "s2", empty.ShipmentID)
	assert.Equal(t, shipment.EmptyShipmentProduct, empty.ProductName)
	assert.True(t, empty.Quantity.IsZero())
	assert.True(t, empty.ShipmentTotal.IsZero())
}

func TestHistory_SinRemesas(t *testing.T) {
	out, err := shipment.NewHistoryUseCase(&fakeShipments{}).List(context.Background(), inventory.Period{})
	require.NoError(t, err)
	assert.Empty(t, out.Rows)
	assert.NotNil(t, out.Rows)
}
