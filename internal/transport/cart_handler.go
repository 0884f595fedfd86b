package transport

import (
	"net/http"

	"sama-store/internal/domain"
	"sama-store/internal/middleware"
	"sama-store/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionHeader identifies the browsing session a cart belongs to.
const sessionHeader = "X-Session-ID"

// AddToCartRequest names the product to add.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// CartResponse is the session cart with its derived subtotal.
type CartResponse struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal int64             `json:"subtotal"`
}

// CartHandler manages the session-scoped cart. Carts work for guests; the
// only identity they need is the session header.
type CartHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(st *store.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{store: st, logger: logger}
}

// RegisterRoutes mounts the cart routes.
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/", h.AddItem)
		r.Delete("/", h.Clear)
		r.Delete("/{productID}", h.RemoveItem)
	})
}

func sessionID(r *http.Request) string {
	return r.Header.Get(sessionHeader)
}

// GetCart returns the session's cart snapshot.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing session id")
		return
	}
	items := h.store.Cart(sid)
	if items == nil {
		items = []domain.CartItem{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items:    items,
		Subtotal: h.store.CartSubtotal(sid),
	})
}

// AddItem adds one unit of a product to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing session id")
		return
	}

	var req AddToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.store.ProductByID(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	h.store.AddToCart(sid, product)
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items:    h.store.Cart(sid),
		Subtotal: h.store.CartSubtotal(sid),
	})
}

// RemoveItem drops the whole line for a product from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing session id")
		return
	}
	h.store.RemoveFromCart(sid, chi.URLParam(r, "productID"))
	w.WriteHeader(http.StatusNoContent)
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	if sid == "" {
		middleware.RespondWithError(w, http.StatusBadRequest, "missing session id")
		return
	}
	h.store.ClearCart(sid)
	w.WriteHeader(http.StatusNoContent)
}
