package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/shipment"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
)

// ── Fakes en memoria ─────────────────────────────────────────────────────────

type memProducts struct{ items []*entity.Product }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	for _, e := range m.items {
		if e.Name == p.Name {
			return &domain.ConstraintViolation{Field: "nome_produto"}
		}
	}
	m.items = append(m.items, p)
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProducts) List(context.Context) ([]*entity.Product, error) { return m.items, nil }

type memLedger struct{ movs []*entity.StockMovement }

func (m *memLedger) Create(_ context.Context, mv *entity.StockMovement) (string, error) {
	m.movs = append(m.movs, mv)
	return mv.ID, nil
}

func (m *memLedger) ListByProduct(_ context.Context, productID string, _, _ *time.Time) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, mv := range m.movs {
		if mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *memLedger) ListDetailed(context.Context, *time.Time, *time.Time) ([]*entity.MovementRow, error) {
	return nil, nil
}

type memShipments struct {
	createErr error
	created   []*entity.Shipment
}

func (m *memShipments) Create(_ context.Context, s *entity.Shipment) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created = append(m.created, s)
	return s.ID, nil
}

func (m *memShipments) GetWithItems(context.Context, string) (*entity.ShipmentWithItems, error) {
	return nil, nil
}

func (m *memShipments) ListWithItems(context.Context, *time.Time, *time.Time) ([]*entity.ShipmentWithItems, error) {
	return nil, nil
}

// memItems falla al insertar ítems del producto failProduct.
type memItems struct{ failProduct string }

func (m *memItems) Create(_ context.Context, it *entity.ShipmentItem) error {
	if it.ProductID == m.failProduct {
		return assert.AnError
	}
	return nil
}

type memTx struct {
	items  *memItems
	ledger *memLedger
}

func (m *memTx) Run(_ context.Context, fn func(repository.ShipmentItemRepository, repository.StockMovementRepository) error) error {
	return fn(m.items, m.ledger)
}

type memUsers struct{}

func (memUsers) Create(context.Context, *entity.User) error { return nil }

func (memUsers) FindByEmail(context.Context, string) (*entity.User, error) { return nil, nil }

type nopManifest struct{}

func (nopManifest) GenerateManifest(context.Context, *entity.ShipmentWithItems, decimal.Decimal) ([]byte, error) {
	return []byte("%PDF"), nil
}

// ── App de prueba ───────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	products  *memProducts
	ledger    *memLedger
	shipments *memShipments
	items     *memItems
}

func newTestEnv() *testEnv {
	log := zerolog.Nop()
	env := &testEnv{
		products:  &memProducts{},
		ledger:    &memLedger{},
		shipments: &memShipments{},
		items:     &memItems{},
	}
	recorder := inventory.NewMovementRecorder(env.ledger, log)
	store := shipment.NewDraftStore()
	finalize := shipment.NewFinalizeUseCase(env.shipments, &memTx{items: env.items, ledger: env.ledger}, recorder, log)

	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:           auth.NewAuthUseCase(memUsers{}, store, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 5}, log),
		ProductUC:        usecase.NewProductUseCase(env.products),
		RegisterMovement: inventory.NewRegisterMovementUseCase(recorder, env.products),
		MovementHistory:  inventory.NewMovementHistoryUseCase(env.ledger),
		StockSummary:     inventory.NewStockSummaryUseCase(env.products, env.ledger, log),
		ShipmentDraft:    shipment.NewDraftUseCase(store, env.products, finalize),
		ShipmentHistory:  shipment.NewHistoryUseCase(env.shipments),
		ShipmentManifest: shipment.NewManifestUseCase(env.shipments, nopManifest{}),
		JWTSecret:        testJWTSecret,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (e *testEnv) product(t *testing.T, name string) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/products", dto.CreateProductRequest{Name: name, UnitMeasure: "kg"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var p dto.ProductResponse
	require.NoError(t, json.Unmarshal(body, &p))
	return p.ID
}

// ── Tests ───────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := newTestEnv()
	resp, _ := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProducts_DuplicadoRetorna409(t *testing.T) {
	env := newTestEnv()
	env.product(t, "Farinha")

	resp, body := env.do(t, http.MethodPost, "/api/products", dto.CreateProductRequest{Name: "Farinha", UnitMeasure: "kg"})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "DUPLICATE", e.Code)
	assert.Equal(t, "nome_produto", e.Field)
}

func TestProducts_ValidacionRetorna400(t *testing.T) {
	env := newTestEnv()

	resp, body := env.do(t, http.MethodPost, "/api/products", dto.CreateProductRequest{Name: "Farinha"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "unidade_medida")
}

func TestInventory_RegistrarYResumir(t *testing.T) {
	env := newTestEnv()
	id := env.product(t, "Farinha")

	resp, body := env.do(t, http.MethodPost, "/api/inventory/movements", dto.RegisterMovementRequest{
		ProductID: id, Kind: "entrada_compra", Quantity: decimal.NewFromInt(10), Date: "2024-01-05",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodGet, "/api/inventory/summary?end_date=2024-01-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.StockSummaryResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].Balance.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, out.Totals.Products)
}

func TestInventory_PeriodoInvalido(t *testing.T) {
	env := newTestEnv()

	resp, body := env.do(t, http.MethodGet, "/api/inventory/summary?start_date=2024-02-01&end_date=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "start_date")

	resp, _ = env.do(t, http.MethodGet, "/api/inventory/movements?end_date=31-01-2024", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestShipments_FinalizacionParcialRetorna207(t *testing.T) {
	env := newTestEnv()
	ok := env.product(t, "Farinha")
	bad := env.product(t, "Ovos")
	env.items.failProduct = bad

	for _, id := range []string{ok, bad} {
		resp, body := env.do(t, http.MethodPost, "/api/shipments/draft/items", dto.AddDraftItemRequest{
			ProductID: id, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(2),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := env.do(t, http.MethodPost, "/api/shipments", dto.FinalizeShipmentRequest{Destination: "Filial"})

	assert.Equal(t, http.StatusMultiStatus, resp.StatusCode)
	var out dto.FinalizeShipmentResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 1, out.Registered)
	assert.Equal(t, 2, out.Requested)
	assert.False(t, out.Complete)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, 2, out.Failures[0].Position)
	assert.Len(t, env.ledger.movs, 1)
}

func TestShipments_FinalizacionCompletaLimpiaBorrador(t *testing.T) {
	env := newTestEnv()
	id := env.product(t, "Farinha")
	resp, _ := env.do(t, http.MethodPost, "/api/shipments/draft/items", dto.AddDraftItemRequest{
		ProductID: id, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(2),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/shipments", dto.FinalizeShipmentRequest{Destination: "Filial"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body := env.do(t, http.MethodGet, "/api/shipments/draft", nil)
	var draft dto.DraftResponse
	require.NoError(t, json.Unmarshal(body, &draft))
	assert.Empty(t, draft.Items)
}

func TestShipments_FalloDeCabeceraRetorna502(t *testing.T) {
	env := newTestEnv()
	id := env.product(t, "Farinha")
	env.shipments.createErr = assert.AnError
	env.do(t, http.MethodPost, "/api/shipments/draft/items", dto.AddDraftItemRequest{
		ProductID: id, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero,
	})

	resp, body := env.do(t, http.MethodPost, "/api/shipments", dto.FinalizeShipmentRequest{Destination: "Filial"})

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), "SHIPMENT_HEADER_FAILED")
	assert.Empty(t, env.ledger.movs)
}

func TestShipments_LogoutDescartaBorrador(t *testing.T) {
	env := newTestEnv()
	id := env.product(t, "Farinha")
	env.do(t, http.MethodPost, "/api/shipments/draft/items", dto.AddDraftItemRequest{
		ProductID: id, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1),
	})

	resp, _ := env.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := env.do(t, http.MethodGet, "/api/shipments/draft", nil)
	var draft dto.DraftResponse
	require.NoError(t, json.Unmarshal(body, &draft))
	assert.Empty(t, draft.Items)
}

func TestShipments_ManifestNoEncontrado(t *testing.T) {
	env := newTestEnv()

	resp, _ := env.do(t, http.MethodGet, "/api/shipments/nope/manifest", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
