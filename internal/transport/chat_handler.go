package transport

import (
	"errors"
	"net/http"

	"sama-store/internal/domain"
	"sama-store/internal/middleware"
	"sama-store/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SendMessageRequest is a chat message body.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// ThreadResponse is one customer's view of their support thread.
type ThreadResponse struct {
	Messages    []domain.ChatMessage `json:"messages"`
	UnreadCount int                  `json:"unread_count"`
}

// ChatHandler serves the customer side of the support chat. It sits behind
// optional auth: guests chat under the guest sentinel.
type ChatHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(st *store.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{store: st, logger: logger}
}

// RegisterRoutes mounts the chat routes behind optional authentication.
func (h *ChatHandler) RegisterRoutes(r chi.Router, optionalAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Get("/api/chat", h.MyThread)
		r.Post("/api/chat", h.SendMessage)
	})
}

// caller resolves the chat identity for a request: the authenticated user or
// the guest sentinel.
func caller(r *http.Request) domain.User {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		return domain.User{Email: domain.GuestSender, Name: "Guest", Role: domain.RoleCustomer}
	}
	name, _ := middleware.GetUserName(r.Context())
	return domain.User{Email: userID, Name: name, Role: domain.RoleCustomer}
}

// MyThread returns the caller's thread and how many admin replies are unread.
func (h *ChatHandler) MyThread(w http.ResponseWriter, r *http.Request) {
	user := caller(r)
	messages := h.store.Thread(user.Email)
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, ThreadResponse{
		Messages:    messages,
		UnreadCount: h.store.UnreadAdminCount(user.Email),
	})
}

// SendMessage appends a customer message to the caller's thread.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.store.SendChatMessage(r.Context(), req.Text, caller(r), false, "")
	if err != nil {
		if errors.Is(err, store.ErrBlankMessage) {
			middleware.RespondWithError(w, http.StatusBadRequest, "message text is blank")
			return
		}
		h.logger.Error("Failed to send chat message", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, msg)
}
