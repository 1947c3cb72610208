package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddDraftItemRequest agrega una línea a la remesa en preparación.
type AddDraftItemRequest struct {
	ProductID string          `json:"produto_id"`
	Quantity  decimal.Decimal `json:"quantidade_remetida"`
	UnitPrice decimal.Decimal `json:"preco_unitario_na_remessa"`
}

// DraftItemDTO línea de la remesa en preparación.
type DraftItemDTO struct {
	ProductID   string          `json:"produto_id"`
	ProductName string          `json:"nome_produto"`
	Quantity    decimal.Decimal `json:"quantidade_remetida"`
	UnitPrice   decimal.Decimal `json:"preco_unitario_na_remessa"`
	Subtotal    decimal.Decimal `json:"subtotal_item"`
}

// DraftResponse remesa en preparación con su total preliminar.
type DraftResponse struct {
	Items []DraftItemDTO  `json:"items"`
	Total decimal.Decimal `json:"total_preliminar"`
}

// FinalizeShipmentRequest datos finales de la remesa; los ítems salen del borrador.
type FinalizeShipmentRequest struct {
	Destination string `json:"destino"`
	Observation string `json:"observacao_remessa,omitempty"`
	Date        string `json:"data_remessa,omitempty"`
}

// ItemFailureDTO línea que no se pudo registrar.
type ItemFailureDTO struct {
	Position  int    `json:"posicao"`
	ProductID string `json:"produto_id"`
	Message   string `json:"message"`
}

// FinalizeShipmentResponse resultado de finalizar: completo o parcial.
type FinalizeShipmentResponse struct {
	ShipmentID string           `json:"remessa_id"`
	Requested  int              `json:"itens_solicitados"`
	Registered int              `json:"itens_registrados"`
	Complete   bool             `json:"completa"`
	Message    string           `json:"message"`
	Failures   []ItemFailureDTO `json:"failures,omitempty"`
}

// ShipmentRowDTO fila aplanada remesa + ítem + producto. ShipmentTotal se repite en
// todas las filas de la misma remesa.
type ShipmentRowDTO struct {
	ShipmentID    string          `json:"remessa_id"`
	Date          *time.Time      `json:"data_remessa"`
	Destination   string          `json:"destino"`
	Observation   *string         `json:"observacao_remessa"`
	ProductName   string          `json:"produto"`
	UnitMeasure   string          `json:"unidade"`
	Quantity      decimal.Decimal `json:"quantidade"`
	UnitPrice     decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal_item"`
	ShipmentTotal decimal.Decimal `json:"total_remessa"`
}

// ShipmentHistoryResponse histórico de remesas del período.
type ShipmentHistoryResponse struct {
	Rows      []ShipmentRowDTO `json:"rows"`
	Shipments int              `json:"remessas"`
}
