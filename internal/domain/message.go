package domain

import "time"

// ChatMessage struct - One support-chat message between a user and an admin.
type ChatMessage struct {
	MessageID  string     `json:"message_id,omitempty"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	Body       string     `json:"message"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
}

// ChatPartner struct - A user an admin has an open conversation with.
type ChatPartner struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

// AdminContact struct - An admin a user can open a support conversation with.
type AdminContact struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
