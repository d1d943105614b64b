package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/generated/servers"
)

func toItems(items []servers.NewOrderItem) ([]order.Item, error) {
	result := make([]order.Item, 0, len(items))
	for _, in := range items {
		productID, err := kernel.UUIDFrom(in.ProductId)
		if err != nil {
			return nil, err
		}
		addonID, err := kernel.UUIDPtrFrom(in.AddonId)
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(in.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(productID, in.Quantity, addonID, price)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func toOrder(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:              view.ID.Raw(),
		Number:          view.Number,
		BranchId:        view.BranchID.Raw(),
		CustomerId:      view.CustomerID.Raw(),
		DeliveryStaffId: kernel.RawPtr(view.DeliveryStaffID),
		Status:          servers.Status(view.Status.String()),
		Color:           view.Status.Color(),
		Total:           view.Total.String(),
		CreatedAt:       view.CreatedAt,
	}
}

func toOrderDetails(found queries.GetOrderQueryResponse) servers.OrderDetails {
	items := make([]servers.OrderItem, len(found.Items))
	for i, item := range found.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Raw(),
			AddonId:   kernel.RawPtr(item.AddonID),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			LineTotal: item.LineTotal.String(),
		}
	}

	history := make([]servers.StatusChange, len(found.History))
	for i, change := range found.History {
		history[i] = servers.StatusChange{
			From:    servers.Status(change.From.String()),
			To:      servers.Status(change.To.String()),
			ActorId: change.ActorID.Raw(),
			At:      change.At,
		}
		if change.Notes != "" {
			history[i].Notes = &change.Notes
		}
	}

	return servers.OrderDetails{
		Order:   toOrder(found.OrderView),
		Items:   items,
		History: history,
	}
}

func toAdvanceResult(result lifecycle.AdvanceResult) servers.AdvanceResult {
	response := servers.AdvanceResult{
		Outcome: servers.AdvanceResultOutcome(result.Outcome().String()),
		From:    servers.Status(result.From().String()),
		Status:  servers.Status(result.Status().String()),
	}
	if result.Outcome() == lifecycle.NeedsDeliveryAssignment {
		candidates := make([]servers.Actor, len(result.Candidates()))
		for i, candidate := range result.Candidates() {
			candidates[i] = toActor(candidate)
		}
		response.Candidates = &candidates
	}
	return response
}

func toActor(a *actor.Actor) servers.Actor {
	return servers.Actor{
		Id:       a.ID().Raw(),
		Name:     a.Name(),
		Role:     servers.Role(a.Role().String()),
		BranchId: kernel.RawPtr(a.BranchID()),
	}
}

func toActorView(view queries.ActorView) servers.Actor {
	return servers.Actor{
		Id:       view.ID.Raw(),
		Name:     view.Name,
		Role:     servers.Role(view.Role.String()),
		BranchId: kernel.RawPtr(view.BranchID),
	}
}

func toBranchSummary(summary *queries.BranchSummary) servers.BranchSummary {
	counts := make(map[string]int, len(summary.Counts))
	for status, count := range summary.Counts {
		counts[status.String()] = count
	}
	return servers.BranchSummary{
		BranchId:       summary.BranchID.Raw(),
		Counts:         counts,
		Active:         summary.Active,
		Total:          summary.Total,
		CompletedSales: summary.CompletedSales.String(),
		From:           timePtr(summary.From),
		To:             timePtr(summary.To),
		GeneratedAt:    summary.GeneratedAt,
	}
}

func notes(n *string) string {
	if n == nil {
		return ""
	}
	return *n
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
