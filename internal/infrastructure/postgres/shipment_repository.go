package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var (
	_ repository.ShipmentRepository     = (*ShipmentRepo)(nil)
	_ repository.ShipmentItemRepository = (*ShipmentItemRepo)(nil)
)

// ShipmentRepo cabeceras de remessas sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create inserta la cabecera y devuelve su ID. Sin fecha se usa now() del servidor.
func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) (string, error) {
	query := `
		INSERT INTO remessas (id, destino, observacao_remessa, data_remessa)
		VALUES ($1, $2, $3, COALESCE($4, now()))
		RETURNING id, data_remessa`
	var date time.Time
	if err := r.q.QueryRow(ctx, query, s.ID, s.Destination, s.Observation, s.Date).Scan(&s.ID, &date); err != nil {
		return "", fmt.Errorf("insert remessa: %w", err)
	}
	s.Date = &date
	return s.ID, nil
}

// shipmentJoin remessa + ítems + producto; una remessa sin ítems aparece con columnas de ítem nulas.
const shipmentJoin = `
	SELECT r.id, r.destino, r.observacao_remessa, r.data_remessa,
	       i.id, i.produto_id, i.quantidade_remetida, i.preco_unitario_na_remessa, i.subtotal_item,
	       p.nome_produto, p.unidade_medida
	FROM remessas r
	LEFT JOIN itens_remessa i ON i.remessa_id = r.id
	LEFT JOIN produtos p ON p.id = i.produto_id
	WHERE 1 = 1`

// GetWithItems remessa con sus líneas o nil si no existe.
func (r *ShipmentRepo) GetWithItems(ctx context.Context, id string) (*entity.ShipmentWithItems, error) {
	if !isUUID(id) {
		return nil, nil
	}
	list, err := r.queryWithItems(ctx, shipmentJoin+" AND r.id = $1 ORDER BY i.id", []any{id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListWithItems remessas de [from, before), más recientes primero.
func (r *ShipmentRepo) ListWithItems(ctx context.Context, from, before *time.Time) ([]*entity.ShipmentWithItems, error) {
	query, args := appendRange(shipmentJoin, nil, "r.data_remessa", from, before)
	query += " ORDER BY r.data_remessa DESC, r.id, i.id"
	return r.queryWithItems(ctx, query, args)
}

// itemColumns columnas numéricas del ítem; nulas cuando la remessa no tiene ítems (LEFT JOIN).
type itemColumns struct {
	qty, price, subtotal decimal.NullDecimal
}

func (r *ShipmentRepo) queryWithItems(ctx context.Context, query string, args []any) ([]*entity.ShipmentWithItems, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list remessas: %w", err)
	}
	defer rows.Close()

	var list []*entity.ShipmentWithItems
	byID := make(map[string]*entity.ShipmentWithItems)
	for rows.Next() {
		var (
			s        entity.Shipment
			itemID   *string
			prodID   *string
			item     itemColumns
			prodName *string
			unit     *string
		)
		if err := rows.Scan(&s.ID, &s.Destination, &s.Observation, &s.Date,
			&itemID, &prodID, &item.qty, &item.price, &item.subtotal, &prodName, &unit); err != nil {
			return nil, fmt.Errorf("scan remessa: %w", err)
		}
		cur, ok := byID[s.ID]
		if !ok {
			cur = &entity.ShipmentWithItems{Shipment: s}
			byID[s.ID] = cur
			list = append(list, cur)
		}
		if itemID == nil {
			continue
		}
		v := entity.ShipmentItemView{ShipmentItem: entity.ShipmentItem{
			ID:         *itemID,
			ShipmentID: s.ID,
			Quantity:   item.qty.Decimal,
			UnitPrice:  item.price.Decimal,
			Subtotal:   item.subtotal.Decimal,
		}}
		if prodID != nil {
			v.ProductID = *prodID
		}
		if prodName != nil {
			v.ProductName = *prodName
		}
		if unit != nil {
			v.UnitMeasure = *unit
		}
		cur.Items = append(cur.Items, v)
	}
	return list, rows.Err()
}

// ShipmentItemRepo líneas itens_remessa sobre PostgreSQL.
type ShipmentItemRepo struct {
	q Querier
}

// NewShipmentItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentItemRepository(q Querier) *ShipmentItemRepo {
	return &ShipmentItemRepo{q: q}
}

// Create inserta la línea con su subtotal ya calculado.
func (r *ShipmentItemRepo) Create(ctx context.Context, it *entity.ShipmentItem) error {
	query := `
		INSERT INTO itens_remessa
			(id, remessa_id, produto_id, quantidade_remetida, preco_unitario_na_remessa, subtotal_item)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, it.ID, it.ShipmentID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal)
	if err != nil {
		return fmt.Errorf("insert item remessa: %w", err)
	}
	return nil
}
