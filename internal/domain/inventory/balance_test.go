package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func mov(kind, qty string) *entity.StockMovement {
	return &entity.StockMovement{Kind: kind, Quantity: decimal.RequireFromString(qty)}
}

func TestSignOf(t *testing.T) {
	cases := map[string]int{
		entity.KindEntradaCompra:   1,
		entity.KindEntradaProducao: 1,
		"entrada_devolucao":        1,
		entity.KindAjustePositivo:  1,
		entity.KindSaidaVenda:      -1,
		entity.KindSaidaRemessa:    -1,
		entity.KindSaidaPerda:      -1,
		"saida_doacao":             -1,
		entity.KindAjusteNegativo:  -1,
		"ajuste_inventario":        0,
		"":                         0,
	}
	for kind, want := range cases {
		assert.Equal(t, want, inventory.SignOf(kind), "tipo %q", kind)
	}
}

func TestAjustePositivo_SumaSaldoPeroNoEsEntradaDelPeriodo(t *testing.T) {
	movs := []*entity.StockMovement{
		mov(entity.KindAjustePositivo, "4"),
		mov(entity.KindAjusteNegativo, "1"),
	}

	assert.True(t, inventory.CumulativeBalance(movs).Equal(decimal.NewFromInt(3)))

	in, out := inventory.PeriodFigures(movs)
	assert.True(t, in.IsZero(), "ajuste_positivo no cuenta como entrada del período")
	assert.True(t, out.Equal(decimal.NewFromInt(1)), "ajuste_negativo sí cuenta como salida")
}

func TestCumulativeBalance(t *testing.T) {
	movs := []*entity.StockMovement{
		mov(entity.KindEntradaCompra, "10"),
		mov(entity.KindEntradaProducao, "2.5"),
		mov(entity.KindSaidaVenda, "3"),
		mov(entity.KindSaidaRemessa, "1.25"),
		mov("desconocido", "100"),
	}
	assert.Equal(t, "8.25", inventory.CumulativeBalance(movs).String())
}

func TestSinMovimientos_Cero(t *testing.T) {
	assert.True(t, inventory.CumulativeBalance(nil).IsZero())
	in, out := inventory.PeriodFigures(nil)
	assert.True(t, in.IsZero())
	assert.True(t, out.IsZero())
}
