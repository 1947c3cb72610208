package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y saldos (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	history  *inventory.MovementHistoryUseCase
	summary  *inventory.StockSummaryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	register *inventory.RegisterMovementUseCase,
	history *inventory.MovementHistoryUseCase,
	summary *inventory.StockSummaryUseCase,
) *InventoryHandler {
	return &InventoryHandler{register: register, history: history, summary: summary}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de estoque
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "produto_id, tipo_movimento, quantidade_movimentada, data_movimento opcional"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.register.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{ID: id})
}

// ListMovements godoc
// @Summary      Histórico de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD, inclusivo"
// @Param        end_date    query  string  false  "YYYY-MM-DD, inclusivo"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	period, err := periodFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.history.List(c.UserContext(), period)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de estoque por producto
// @Description  Saldo acumulado hasta end_date (start_date no lo afecta) y entradas/salidas del período.
// @Description  Las consultas de producto que fallan se informan en failures con cifras en cero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD, inclusivo"
// @Param        end_date    query  string  false  "YYYY-MM-DD, inclusivo"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	period, err := periodFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	summary, err := h.summary.CurrentStockSummary(c.UserContext(), period)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSummaryResponse(summary))
}

// periodFromQuery lee start_date / end_date (YYYY-MM-DD, ambos opcionales).
func periodFromQuery(c *fiber.Ctx) (domaininv.Period, error) {
	start, err := domaininv.ParseDate("start_date", c.Query("start_date"))
	if err != nil {
		return domaininv.Period{}, err
	}
	end, err := domaininv.ParseDate("end_date", c.Query("end_date"))
	if err != nil {
		return domaininv.Period{}, err
	}
	return domaininv.NewPeriod(start, end)
}

func toSummaryResponse(s *inventory.StockSummary) dto.StockSummaryResponse {
	out := dto.StockSummaryResponse{Rows: make([]dto.ProductBalanceRow, 0, len(s.Rows))}
	for _, r := range s.Rows {
		out.Rows = append(out.Rows, dto.ProductBalanceRow{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			UnitMeasure:   r.UnitMeasure,
			PeriodInflow:  r.PeriodInflow,
			PeriodOutflow: r.PeriodOutflow,
			Balance:       r.Balance,
		})
	}
	for _, f := range s.Failures {
		out.Failures = append(out.Failures, dto.SummaryFailureDTO{
			ProductID:   f.ProductID,
			ProductName: f.ProductName,
			Query:       f.Query,
			Message:     f.Err.Error(),
		})
	}
	balance, inflow, outflow := s.Totals()
	out.Totals = dto.SummaryTotalsDTO{
		Products:      len(s.Rows),
		TotalBalance:  balance,
		PeriodInflow:  inflow,
		PeriodOutflow: outflow,
		NetPeriodMove: inflow.Sub(outflow),
	}
	return out
}
