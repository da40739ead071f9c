package api

import (
	"net/http"
	"strings"

	"github.com/Spok95/project-assistant/internal/domain/inventory"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/labstack/echo/v4"
)

type inventoryResponse struct {
	Materials materials.Inventory `json:"materials"`
}

type addMaterialRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (a *API) handleGetInventory(c echo.Context) error {
	inv, err := a.inventory.Get(c.Request().Context(), uidOf(c))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, inventoryResponse{Materials: inv})
}

// handleSaveInventory перезаписывает весь документ (последняя запись выигрывает).
func (a *API) handleSaveInventory(c echo.Context) error {
	var req inventoryResponse
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	for name, qty := range req.Materials {
		if qty < 0 {
			req.Materials[name] = 0
		}
	}
	if err := a.inventory.Save(c.Request().Context(), uidOf(c), req.Materials); err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, inventoryResponse{Materials: inventory.Snapshot(req.Materials)})
}

func (a *API) handleAddMaterial(c echo.Context) error {
	var req addMaterialRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}
	name := strings.TrimSpace(req.Name)
	if err := a.inventory.AddMaterial(c.Request().Context(), uidOf(c), name, req.Quantity); err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusCreated, materials.MaterialQuantity{Name: name, Quantity: req.Quantity})
}
