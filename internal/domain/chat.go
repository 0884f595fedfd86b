package domain

import (
	"strings"
	"time"
)

// GuestSender is the sender id used for messages from an unauthenticated
// visitor.
const GuestSender = "guest"

// adminPrefix marks messages an admin wrote into a customer's thread.
const adminPrefix = "admin-"

// ChatMessage is one message in a customer support thread. Messages are never
// deleted; only the read flag is ever mutated.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
	IsAdmin    bool      `json:"is_admin"`
}

// AdminSenderID returns the synthetic sender id for an admin message aimed at
// the given customer.
func AdminSenderID(customerID string) string {
	return adminPrefix + customerID
}

// ThreadOwner resolves the customer a sender id belongs to: admin mirror ids
// map back to the customer, everything else is the customer itself.
func ThreadOwner(senderID string) string {
	return strings.TrimPrefix(senderID, adminPrefix)
}

// InThread reports whether the message belongs to the given customer's thread:
// either sent by the customer or by the admin mirror id for that customer.
func (m ChatMessage) InThread(customerID string) bool {
	return m.SenderID == customerID || m.SenderID == AdminSenderID(customerID)
}
