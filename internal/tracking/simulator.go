// Package tracking simulates an order's delivery lifecycle: a forward-only
// four-stage progression driven by explicit refresh triggers, plus a synthetic
// courier assignment derived from the order id.
package tracking

import (
	"context"
	"errors"

	"sama-store/internal/domain"
	"sama-store/internal/store"
)

// View is what the tracking page renders for one order. For an order the
// store does not know, the simulator degrades to a safe default instead of
// failing: an assumed processing stage in the default province.
type View struct {
	OrderID    string             `json:"order_id"`
	Status     domain.OrderStatus `json:"status"`
	StageIndex int                `json:"stage_index"`
	Progress   float64            `json:"progress"`
	Province   domain.Province    `json:"province"`
	Courier    *Courier           `json:"courier,omitempty"`
	Known      bool               `json:"known"`
}

// Simulator advances orders through the delivery pipeline. It owns no state of
// its own; the order's status field inside the domain store is the only thing
// it reads or writes.
type Simulator struct {
	store *store.Store
}

// New builds a simulator over the domain store.
func New(s *store.Store) *Simulator {
	return &Simulator{store: s}
}

// Track builds the current tracking view for an order id.
func (s *Simulator) Track(orderID string) View {
	order, err := s.store.OrderByID(orderID)
	if err != nil {
		return fallbackView(orderID)
	}
	return buildView(orderID, order.Status, order.Province, true)
}

// Advance moves the order exactly one stage forward. Once delivered, further
// advances are no-ops. Advancing an unknown order returns the fallback view
// untouched; nothing is written.
func (s *Simulator) Advance(ctx context.Context, orderID string) (View, error) {
	order, err := s.store.OrderByID(orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			return fallbackView(orderID), nil
		}
		return View{}, err
	}

	if order.Status.Terminal() {
		return buildView(orderID, order.Status, order.Province, true), nil
	}

	next := domain.OrderStatuses[order.Status.Index()+1]
	if err := s.store.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return View{}, err
	}
	return buildView(orderID, next, order.Province, true), nil
}

func fallbackView(orderID string) View {
	return buildView(orderID, domain.StatusProcessing, domain.ProvinceBaghdad, false)
}

func buildView(orderID string, status domain.OrderStatus, province domain.Province, known bool) View {
	idx := status.Index()
	v := View{
		OrderID:    orderID,
		Status:     status,
		StageIndex: idx,
		Progress:   float64(idx) / float64(len(domain.OrderStatuses)-1),
		Province:   province,
		Known:      known,
	}
	// Courier details stay hidden until the order is actually on the road.
	if status == domain.StatusShipped || status == domain.StatusDelivered {
		c := CourierFor(orderID)
		v.Courier = &c
	}
	return v
}
