package handlers

import (
	"net/http"

	"empiria-profile/internal/services"
	"empiria-profile/utils"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

type OrderHandler struct {
	app          *pocketbase.PocketBase
	orderService *services.OrderService
}

func NewOrderHandler(app *pocketbase.PocketBase, orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		app:          app,
		orderService: orderService,
	}
}

// ListOrders - Purchase history with line items, newest first
func (h *OrderHandler) ListOrders(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Unauthorized", nil)
	}

	user := services.UserFromRecord(e.Auth)
	orders := h.orderService.ListForUser(e.Request.Context(), user.ID)
	total := services.TotalSpent(orders)

	return e.JSON(http.StatusOK, map[string]any{
		"orders":      orders,
		"total_spent": utils.FormatCurrency(total.InexactFloat64(), user.DefaultCurrency),
	})
}
