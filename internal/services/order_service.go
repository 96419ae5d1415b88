package services

import (
	"context"
	"log/slog"

	"empiria-profile/models"
	"empiria-profile/monitoring"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	app     *pocketbase.PocketBase
	monitor *monitoring.Monitor
}

func NewOrderService(app *pocketbase.PocketBase, monitor *monitoring.Monitor) *OrderService {
	return &OrderService{app: app, monitor: monitor}
}

type orderItemRow struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	TierID    string  `db:"tier_id"`
	TierName  string  `db:"tier_name"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	Subtotal  float64 `db:"subtotal"`
}

// ListForUser returns the user's orders with event and line items
// joined, most recent first as delivered by the store. A failed fetch
// degrades to an empty list.
func (s *OrderService) ListForUser(ctx context.Context, userID string) []models.Order {
	records, err := s.app.FindRecordsByFilter(
		"orders",
		"user_id = {:userId}",
		"-created",
		historyLimit,
		0,
		map[string]any{"userId": userID},
	)
	if err != nil {
		slog.Error("fetching orders failed", "userID", userID, "error", err)
		s.monitor.TrackFetchFailure("orders")
		return []models.Order{}
	}

	orders := make([]models.Order, 0, len(records))
	orderIDs := make([]any, 0, len(records))
	for _, record := range records {
		if errs := s.app.ExpandRecord(record, []string{"event_id"}, nil); len(errs) > 0 {
			slog.Warn("order expand failed", "orderID", record.Id, "errors", errs)
		}
		orders = append(orders, orderFromRecord(record))
		orderIDs = append(orderIDs, record.Id)
	}
	if len(orders) == 0 {
		return orders
	}

	// Single joined query for all line items, tier names included.
	rows := []orderItemRow{}
	err = s.app.DB().
		Select(
			"order_items.id",
			"order_items.order_id",
			"order_items.tier_id",
			"order_items.quantity",
			"order_items.unit_price",
			"order_items.subtotal",
			"ticket_tiers.name AS tier_name",
		).
		From("order_items").
		LeftJoin("ticket_tiers", dbx.NewExp("ticket_tiers.id = order_items.tier_id")).
		Where(dbx.In("order_items.order_id", orderIDs...)).
		All(&rows)
	if err != nil {
		// Orders still render; the items section stays empty.
		slog.Error("fetching order items failed", "userID", userID, "error", err)
		s.monitor.TrackFetchFailure("order_items")
		return orders
	}

	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], models.OrderItem{
			ID:        row.ID,
			OrderID:   row.OrderID,
			TierID:    row.TierID,
			TierName:  row.TierName,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
			Subtotal:  row.Subtotal,
		})
	}
	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
	return orders
}

// TotalSpent accumulates the stored totals of completed orders as exact
// decimals. Line items are never re-summed; the stored total_amount is
// authoritative.
func TotalSpent(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status == "completed" {
			total = total.Add(decimal.NewFromFloat(o.TotalAmount))
		}
	}
	return total
}
