package transport

import (
	"errors"
	"net/http"

	"sama-store/internal/domain"
	"sama-store/internal/middleware"
	"sama-store/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductRequest is the admin payload for creating or replacing a product.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         int64    `json:"price" validate:"required,gt=0"`
	Category      string   `json:"category" validate:"required"`
	Images        []string `json:"images" validate:"required,min=1"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	IsOffer       bool     `json:"is_offer"`
	DiscountPrice int64    `json:"discount_price" validate:"gte=0"`
	IsNew         bool     `json:"is_new"`
}

// UpdateStatusRequest sets an order's delivery status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminReplyRequest is an admin chat reply into a customer thread.
type AdminReplyRequest struct {
	Text string `json:"text" validate:"required"`
}

// StatsResponse aggregates the dashboard numbers.
type StatsResponse struct {
	TotalSales    int64 `json:"total_sales"`
	PendingOrders int   `json:"pending_orders"`
	ProductCount  int   `json:"product_count"`
	CustomerCount int   `json:"customer_count"`
}

// AdminHandler serves the admin console: catalog management, order status,
// support threads, the audit trail and the reset action.
type AdminHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(st *store.Store, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{store: st, logger: logger}
}

// RegisterRoutes mounts every admin route behind auth + admin authorization.
func (h *AdminHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)

		r.Post("/products", h.AddProduct)
		r.Put("/products/{id}", h.UpdateProduct)
		r.Delete("/products/{id}", h.DeleteProduct)

		r.Get("/orders", h.ListOrders)
		r.Put("/orders/{id}/status", h.UpdateOrderStatus)

		r.Get("/stats", h.Stats)
		r.Get("/customers", h.Customers)
		r.Get("/logs", h.Logs)

		r.Get("/chats", h.ChatThreads)
		r.Get("/chats/{userID}", h.Thread)
		r.Post("/chats/{userID}", h.Reply)
		r.Post("/chats/{userID}/read", h.MarkRead)

		r.Post("/reset", h.Reset)
	})
}

func (h *AdminHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return req, false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if req.IsOffer && req.DiscountPrice >= req.Price {
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "DiscountPrice", Message: "Discount price must be below the list price"},
		})
		return req, false
	}
	return req, true
}

func (req ProductRequest) toProduct(id string) domain.Product {
	return domain.Product{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Images:        req.Images,
		Stock:         req.Stock,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		IsOffer:       req.IsOffer,
		DiscountPrice: req.DiscountPrice,
		IsNew:         req.IsNew,
	}
}

// AddProduct creates a catalog entry.
func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product := req.toProduct("p-" + uuid.NewString()[:8])
	h.store.AddProduct(r.Context(), product)
	h.auditOperation(r, "product added "+product.ID)
	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct fully replaces a catalog entry.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	product := req.toProduct(chi.URLParam(r, "id"))
	if err := h.store.UpdateProduct(r.Context(), product); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	h.auditOperation(r, "product updated "+product.ID)
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a catalog entry.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	h.auditOperation(r, "product deleted "+id)
	w.WriteHeader(http.StatusNoContent)
}

// ListOrders returns every order, newest first.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	if orders == nil {
		orders = []domain.Order{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through the delivery pipeline. The store
// enforces the forward-only machine; illegal transitions come back as 409.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	orderID := chi.URLParam(r, "id")
	err := h.store.UpdateOrderStatus(r.Context(), orderID, domain.OrderStatus(req.Status))
	switch {
	case err == nil:
	case errors.Is(err, store.ErrOrderNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	case errors.Is(err, store.ErrInvalidStatus):
		middleware.RespondWithError(w, http.StatusBadRequest, "unknown order status")
		return
	case errors.Is(err, store.ErrStatusRegress):
		middleware.RespondWithError(w, http.StatusConflict, "order status cannot move backwards")
		return
	default:
		h.logger.Error("Failed to update order status", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}

	h.auditOperation(r, "order "+orderID+" status set to "+req.Status)
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"id": orderID, "status": req.Status})
}

// Stats aggregates the dashboard numbers from derived queries.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, StatsResponse{
		TotalSales:    h.store.TotalSales(),
		PendingOrders: h.store.PendingOrderCount(),
		ProductCount:  len(h.store.Products()),
		CustomerCount: len(h.store.Customers()),
	})
}

// Customers lists the derived customer identities.
func (h *AdminHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers := h.store.Customers()
	if customers == nil {
		customers = []domain.User{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, customers)
}

// Logs returns the audit trail, newest first.
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	logs := h.store.Logs()
	if logs == nil {
		logs = []domain.AuditLog{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, logs)
}

// ChatThreads lists every customer thread with unread counts.
func (h *AdminHandler) ChatThreads(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.store.ChatThreads())
}

// Thread returns the full message history for one customer.
func (h *AdminHandler) Thread(w http.ResponseWriter, r *http.Request) {
	messages := h.store.Thread(chi.URLParam(r, "userID"))
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, messages)
}

// Reply sends an admin message into a customer thread.
func (h *AdminHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req AdminReplyRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.store.SendChatMessage(r.Context(), req.Text, domain.User{}, true, chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, store.ErrBlankMessage) {
			middleware.RespondWithError(w, http.StatusBadRequest, "message text is blank")
			return
		}
		h.logger.Error("Failed to send admin reply", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, msg)
}

// MarkRead flips the customer's messages in the thread to read.
func (h *AdminHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkChatsAsRead(r.Context(), chi.URLParam(r, "userID"))
	w.WriteHeader(http.StatusNoContent)
}

// Reset clears every persisted record and reinstates the default catalog.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		h.logger.Error("Failed to reset store", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reset store")
		return
	}

	actor, _ := middleware.GetUserID(r.Context())
	h.store.Log(r.Context(), "database reset", actor, domain.AuditSecurity, domain.OutcomeWarning)
	h.logger.Warn("Store reset to defaults", zap.String("actor", actor))
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *AdminHandler) auditOperation(r *http.Request, action string) {
	actor, _ := middleware.GetUserID(r.Context())
	h.store.Log(r.Context(), action, actor, domain.AuditOperation, domain.OutcomeSuccess)
}
