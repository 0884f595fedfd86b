package transport

import (
	"errors"
	"net/http"

	"sama-store/internal/domain"
	"sama-store/internal/middleware"
	"sama-store/internal/store"
	"sama-store/internal/tracking"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutRequest carries the shipping details for placing an order.
type CheckoutRequest struct {
	Address  string `json:"address" validate:"required"`
	Province string `json:"province" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// OrderHandler serves checkout, order history and delivery tracking.
type OrderHandler struct {
	store     *store.Store
	simulator *tracking.Simulator
	logger    *zap.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(st *store.Store, simulator *tracking.Simulator, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{store: st, simulator: simulator, logger: logger}
}

// RegisterRoutes mounts the order routes. Checkout and order history need an
// authenticated customer; tracking is public, it degrades safely on unknown
// ids.
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/checkout", h.Checkout)
		r.Get("/api/orders", h.MyOrders)
	})
	r.Get("/api/orders/{id}/tracking", h.Track)
	r.Post("/api/orders/{id}/tracking/advance", h.AdvanceTracking)
}

// Checkout turns the session cart into a pending order.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	sid := sessionID(r)
	if sid == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing session id")
		return
	}

	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	province := domain.Province(req.Province)
	if !province.Valid() {
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown province")
		return
	}

	order, err := h.store.Checkout(r.Context(), sid, userID, req.Address, province)
	if err != nil {
		if errors.Is(err, store.ErrEmptyOrder) {
			middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	h.store.Log(r.Context(), "order placed "+order.ID, userID, domain.AuditOperation, domain.OutcomeSuccess)
	h.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int64("total", order.Total),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// MyOrders lists the caller's orders, newest first.
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	orders := h.store.OrdersForUser(userID)
	if orders == nil {
		orders = []domain.Order{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// Track returns the delivery progress view for an order.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.simulator.Track(chi.URLParam(r, "id")))
}

// AdvanceTracking is the manual refresh trigger: it moves the order one stage
// forward and returns the new view.
func (h *OrderHandler) AdvanceTracking(w http.ResponseWriter, r *http.Request) {
	view, err := h.simulator.Advance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("Failed to advance order", zap.String("order_id", chi.URLParam(r, "id")), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to advance order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, view)
}
