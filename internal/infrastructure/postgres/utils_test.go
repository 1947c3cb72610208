package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
)

func TestConstraintViolation_PorNombre(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "produtos_sku_key"})

	got := constraintViolation(err)

	var cv *domain.ConstraintViolation
	require.True(t, errors.As(got, &cv))
	assert.Equal(t, "sku", cv.Field)
	assert.ErrorIs(t, got, domain.ErrDuplicate)
}

func TestConstraintViolation_PorDetalle(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "idx_x", Detail: "Key (nome_produto)=(Farinha) already exists."}

	var cv *domain.ConstraintViolation
	require.True(t, errors.As(constraintViolation(err), &cv))
	assert.Equal(t, "nome_produto", cv.Field)
}

func TestConstraintViolation_OtroError(t *testing.T) {
	assert.Nil(t, constraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.Nil(t, constraintViolation(errors.New("connection refused")))
}

func TestGetByID_IDMalFormadoEsInexistente(t *testing.T) {
	ctx := context.Background()

	// sin conexión: un id que no es UUID no debe llegar al almacén
	p, err := NewProductRepository(nil).GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := NewShipmentRepository(nil).GetWithItems(ctx, "123")
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.True(t, isUUID("8f14e45f-ceea-467f-a0e6-4b1b6f6c4a11"))
}
