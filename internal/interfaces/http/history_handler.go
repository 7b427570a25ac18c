package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/stock"
)

// HistoryHandler maneja las consultas de movimientos y alertas y el disparo
// manual del escaneo de stock bajo (protegido).
type HistoryHandler struct {
	history *stock.HistoryUseCase
	scanner *stock.LowStockScanner
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(history *stock.HistoryUseCase, scanner *stock.LowStockScanner) *HistoryHandler {
	return &HistoryHandler{history: history, scanner: scanner}
}

// ListMovements godoc
// @Summary      Historial de movimientos de stock
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *HistoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.history.ListMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAlerts godoc
// @Summary      Alertas de stock bajo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *HistoryHandler) ListAlerts(c *fiber.Ctx) error {
	out, err := h.history.ListAlerts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RunScan godoc
// @Summary      Ejecutar escaneo de stock bajo
// @Description  Recorre todos los productos y levanta alertas para los que
// @Description  estén en o por debajo del mínimo. Los errores por producto se
// @Description  loguean sin abortar el escaneo.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/alerts/scan [post]
func (h *HistoryHandler) RunScan(c *fiber.Ctx) error {
	h.scanner.Scan()
	return c.JSON(fiber.Map{"message": "escaneo ejecutado"})
}
