package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/shipment"
)

// ShipmentHandler remesa en preparación, finalización, histórico y romaneio (protegido).
type ShipmentHandler struct {
	draft    *shipment.DraftUseCase
	history  *shipment.HistoryUseCase
	manifest *shipment.ManifestUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(draft *shipment.DraftUseCase, history *shipment.HistoryUseCase, manifest *shipment.ManifestUseCase) *ShipmentHandler {
	return &ShipmentHandler{draft: draft, history: history, manifest: manifest}
}

// GetDraft godoc
// @Summary      Remesa en preparación
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/shipments/draft [get]
func (h *ShipmentHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.draft.Get(GetUserID(c)))
}

// AddDraftItem godoc
// @Summary      Agregar ítem a la remesa en preparación
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddDraftItemRequest  true  "produto_id, quantidade_remetida, preco_unitario_na_remessa"
// @Success      201  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/draft/items [post]
func (h *ShipmentHandler) AddDraftItem(c *fiber.Ctx) error {
	var in dto.AddDraftItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.draft.AddItem(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClearDraft godoc
// @Summary      Descartar la remesa en preparación
// @Tags         shipments
// @Security     Bearer
// @Success      204
// @Router       /api/shipments/draft [delete]
func (h *ShipmentHandler) ClearDraft(c *fiber.Ctx) error {
	h.draft.Clear(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Finalize godoc
// @Summary      Finalizar remesa
// @Description  Registra cabecera, ítems y salidas de estoque con los ítems del borrador.
// @Description  201 si todos los ítems quedaron registrados; 207 si fue parcial (la cabecera y los ítems escritos persisten).
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizeShipmentRequest  true  "destino, observacao_remessa, data_remessa"
// @Success      201  {object}  dto.FinalizeShipmentResponse
// @Success      207  {object}  dto.FinalizeShipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.draft.Finalize(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}

	out := dto.FinalizeShipmentResponse{
		ShipmentID: res.ShipmentID,
		Requested:  res.Requested,
		Registered: res.Registered,
		Complete:   res.Complete(),
	}
	for _, f := range res.Failures {
		out.Failures = append(out.Failures, dto.ItemFailureDTO{Position: f.Position, ProductID: f.ProductID, Message: f.Err.Error()})
	}
	if out.Complete {
		out.Message = "Remessa registrada com sucesso."
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	out.Message = fmt.Sprintf("Remessa registrada parcialmente: %d de %d itens.", res.Registered, res.Requested)
	return c.Status(fiber.StatusMultiStatus).JSON(out)
}

// List godoc
// @Summary      Histórico de remesas
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD, inclusivo"
// @Param        end_date    query  string  false  "YYYY-MM-DD, inclusivo"
// @Success      200  {object}  dto.ShipmentHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
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

// Manifest godoc
// @Summary      Romaneio en PDF
// @Tags         shipments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la remesa"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/manifest [get]
func (h *ShipmentHandler) Manifest(c *fiber.Ctx) error {
	pdf, filename, err := h.manifest.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
