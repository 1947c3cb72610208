package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestMovementHistory_FiltraYNombra(t *testing.T) {
	ledger := newFakeLedger()
	ledger.names["p1"] = "Farinha"
	ledger.add("p1", entity.KindEntradaCompra, "10", "2024-01-05")
	ledger.add("p1", entity.KindSaidaVenda, "3", "2024-01-10")
	ledger.add("p9", entity.KindSaidaVenda, "1", "2024-01-12") // producto sin nombre en el join
	ledger.add("p1", entity.KindSaidaVenda, "1", "2024-02-01")

	uc := appinv.NewMovementHistoryUseCase(ledger)
	out, err := uc.List(context.Background(), period(t, "2024-01-01", "2024-01-31"))
	require.NoError(t, err)

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "N/A", out.Items[0].ProductName)
	assert.Equal(t, "Farinha", out.Items[1].ProductName)
	assert.Equal(t, entity.KindSaidaVenda, out.Items[1].Kind)
	assert.Equal(t, entity.KindEntradaCompra, out.Items[2].Kind)
}
