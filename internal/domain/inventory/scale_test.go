package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func TestCheckQuantity(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1", true},
		{"0.001", true},
		{"2.500", true},
		{"2.5000", true},
		{"0", false},
		{"-1", false},
		{"0.0004", false},
		{"1.2345", false},
	}
	for _, c := range cases {
		err := inventory.CheckQuantity("quantidade", decimal.RequireFromString(c.in))
		if c.ok {
			assert.NoError(t, err, c.in)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, c.in)
		}
	}
}

func TestCheckPrice(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"10.50", true},
		{"1.500", true},
		{"0.333", false},
		{"-0.01", false},
	}
	for _, c := range cases {
		err := inventory.CheckPrice("preco", decimal.RequireFromString(c.in))
		if c.ok {
			assert.NoError(t, err, c.in)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidInput, c.in)
		}
	}
}
