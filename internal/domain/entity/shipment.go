package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment cabecera de una remesa (salida agrupada). Inmutable después de creada.
// El total no se guarda: es la suma de los subtotales de sus ítems.
type Shipment struct {
	ID          string
	Destination string
	Observation *string
	Date        *time.Time // nil al insertar = now() del almacén
}

// ShipmentItem línea de una remesa.
type ShipmentItem struct {
	ID         string
	ShipmentID string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal // Quantity × UnitPrice, calculado al escribir
}

// NewShipmentItem construye la línea calculando el subtotal a partir de cantidad y precio.
func NewShipmentItem(id, shipmentID, productID string, quantity, unitPrice decimal.Decimal) *ShipmentItem {
	return &ShipmentItem{
		ID:         id,
		ShipmentID: shipmentID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Subtotal:   quantity.Mul(unitPrice),
	}
}

// ShipmentWithItems remesa con sus líneas y los datos del producto de cada una (lectura).
type ShipmentWithItems struct {
	Shipment
	Items []ShipmentItemView
}

// Total suma de los subtotales de las líneas; nunca se persiste.
func (s *ShipmentWithItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// ShipmentItemView línea de remesa con nombre y unidad del producto.
type ShipmentItemView struct {
	ShipmentItem
	ProductName string
	UnitMeasure string
}
