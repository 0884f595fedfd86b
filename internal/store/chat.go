package store

import (
	"context"
	"strings"

	"sama-store/internal/domain"
	"sama-store/internal/storage"

	"github.com/google/uuid"
)

// ChatThread is the derived per-customer view the admin console lists:
// the thread owner, its latest message and how many customer messages the
// admin has not read yet.
type ChatThread struct {
	UserID      string             `json:"user_id"`
	LastMessage domain.ChatMessage `json:"last_message"`
	UnreadCount int                `json:"unread_count"`
}

// SendChatMessage appends a message to a thread. Blank text is rejected.
// A customer message is attributed to the sender's own id (or the guest
// sentinel); an admin message gets the synthetic admin mirror id for the
// target customer.
func (s *Store) SendChatMessage(ctx context.Context, text string, sender domain.User, isAdmin bool, targetUser string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, ErrBlankMessage
	}

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: timeNow(),
		IsAdmin:   isAdmin,
	}
	if isAdmin {
		msg.SenderID = domain.AdminSenderID(targetUser)
		msg.SenderName = "Sama Support"
	} else {
		msg.SenderID = sender.Email
		msg.SenderName = sender.Name
		if msg.SenderID == "" {
			msg.SenderID = domain.GuestSender
			msg.SenderName = "Guest"
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = append(s.chats, msg)
	s.persist(ctx, storage.CollectionChats, s.chats)
	return msg, nil
}

// Thread returns every message in one customer's thread, oldest first.
func (s *Store) Thread(customerID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ChatMessage
	for _, m := range s.chats {
		if m.InThread(customerID) {
			out = append(out, m)
		}
	}
	return out
}

// MarkChatsAsRead flips the read flag on every customer-authored message in
// the given customer's thread. Admin-authored messages are left alone; the
// customer side reads those through UnreadAdminCount. Idempotent.
func (s *Store) MarkChatsAsRead(ctx context.Context, customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.chats {
		if s.chats[i].SenderID == customerID && !s.chats[i].IsAdmin && !s.chats[i].IsRead {
			s.chats[i].IsRead = true
			changed = true
		}
	}
	if changed {
		s.persist(ctx, storage.CollectionChats, s.chats)
	}
}

// ChatThreads groups all messages into distinct customer threads with the last
// message and the admin-side unread count for each.
func (s *Store) ChatThreads() []ChatThread {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order []string
	seen := make(map[string]bool)
	for _, m := range s.chats {
		owner := domain.ThreadOwner(m.SenderID)
		if !seen[owner] {
			seen[owner] = true
			order = append(order, owner)
		}
	}

	threads := make([]ChatThread, 0, len(order))
	for _, owner := range order {
		t := ChatThread{UserID: owner}
		for _, m := range s.chats {
			if !m.InThread(owner) {
				continue
			}
			t.LastMessage = m
			if !m.IsAdmin && !m.IsRead {
				t.UnreadCount++
			}
		}
		threads = append(threads, t)
	}
	return threads
}

// UnreadAdminCount counts unread admin replies in one customer's thread, for
// the chat widget badge. The flag itself is never flipped on admin messages,
// so the count drops to zero only through the mirrored read state the caller
// keeps.
func (s *Store) UnreadAdminCount(customerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, m := range s.chats {
		if m.InThread(customerID) && m.IsAdmin && !m.IsRead {
			count++
		}
	}
	return count
}
