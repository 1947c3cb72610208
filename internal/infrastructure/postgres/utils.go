package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// Querier lo implementan *pgxpool.Pool y pgx.Tx; los repos funcionan igual dentro o fuera de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUUID un id que no es UUID no puede existir en columnas UUID (Postgres lo rechaza con 22P02).
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// uniqueFields nombre de constraint UNIQUE → campo expuesto al usuario.
var uniqueFields = map[string]string{
	"produtos_nome_produto_key": "nome_produto",
	"produtos_sku_key":          "sku",
	"usuarios_email_key":        "email",
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}

// constraintViolation traduce un 23505 a *domain.ConstraintViolation con el campo afectado.
// Devuelve nil si err no es una violación de unicidad.
func constraintViolation(err error) error {
	if !isUniqueViolation(err) {
		return nil
	}
	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	field, ok := uniqueFields[pgErr.ConstraintName]
	if !ok {
		// constraint sin nombre conocido: el detalle trae "Key (columna)=(valor)"
		field = keyColumn(pgErr.Detail)
	}
	return &domain.ConstraintViolation{Field: field}
}

func keyColumn(detail string) string {
	start := strings.Index(detail, "Key (")
	if start < 0 {
		return ""
	}
	rest := detail[start+len("Key ("):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
