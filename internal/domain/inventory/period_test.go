package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func TestParseDate(t *testing.T) {
	d, err := inventory.ParseDate("end_date", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *d)

	d, err = inventory.ParseDate("end_date", "  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = inventory.ParseDate("end_date", "31/01/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPeriod_CotasExclusivas(t *testing.T) {
	start, _ := inventory.ParseDate("start_date", "2024-01-01")
	end, _ := inventory.ParseDate("end_date", "2024-01-31")

	p, err := inventory.NewPeriod(start, end)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *p.From())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *p.Before())

	upTo := p.UpTo()
	assert.Nil(t, upTo.From())
	assert.Equal(t, *p.Before(), *upTo.Before())
}

func TestPeriod_Abierto(t *testing.T) {
	var p inventory.Period
	assert.Nil(t, p.From())
	assert.Nil(t, p.Before())
}

func TestNewPeriod_InicioPosteriorAlFin(t *testing.T) {
	start, _ := inventory.ParseDate("start_date", "2024-02-01")
	end, _ := inventory.ParseDate("end_date", "2024-01-01")

	_, err := inventory.NewPeriod(start, end)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
