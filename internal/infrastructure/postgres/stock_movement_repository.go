package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro movimentos_estoque sobre PostgreSQL (usable con pool o tx). Solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. Sin fecha se usa now() del servidor.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) (string, error) {
	query := `
		INSERT INTO movimentos_estoque
			(id, produto_id, tipo_movimento, quantidade_movimentada, observacao, referencia_transacao_id, data_movimento)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, now()))
		RETURNING id, data_movimento`
	var date time.Time
	err := r.q.QueryRow(ctx, query,
		m.ID, m.ProductID, m.Kind, m.Quantity, m.Observation, m.TransactionRef, m.Date,
	).Scan(&m.ID, &date)
	if err != nil {
		return "", fmt.Errorf("insert movimento: %w", err)
	}
	m.Date = &date
	return m.ID, nil
}

// ListByProduct tipo y cantidad de los movimientos de un producto en [from, before).
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, from, before *time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, produto_id, tipo_movimento, quantidade_movimentada, data_movimento
		FROM movimentos_estoque WHERE produto_id = $1`
	args := []any{productID}
	query, args = appendRange(query, args, "data_movimento", from, before)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos by produto: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListDetailed movimientos con el nombre del producto, más recientes primero.
func (r *StockMovementRepo) ListDetailed(ctx context.Context, from, before *time.Time) ([]*entity.MovementRow, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo_movimento, m.quantidade_movimentada, m.observacao,
		       m.referencia_transacao_id, m.data_movimento, COALESCE(p.nome_produto, '')
		FROM movimentos_estoque m
		LEFT JOIN produtos p ON p.id = m.produto_id
		WHERE 1 = 1`
	query, args := appendRange(query, nil, "m.data_movimento", from, before)
	query += " ORDER BY m.data_movimento DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementRow
	for rows.Next() {
		var m entity.MovementRow
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Observation,
			&m.TransactionRef, &m.Date, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// appendRange agrega "col >= from" y "col < before" con placeholders a continuación de args.
func appendRange(query string, args []any, col string, from, before *time.Time) (string, []any) {
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND %s >= $%d", col, len(args))
	}
	if before != nil {
		args = append(args, *before)
		query += fmt.Sprintf(" AND %s < $%d", col, len(args))
	}
	return query, args
}
