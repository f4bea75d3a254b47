package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"
)

// Compile-time check
var _ output.ChatAPI = (*ChatClient)(nil)

// ChatClient struct - Output adapter for support-chat history and sending.
// Live fan-out is the socket adapter's job; this one is plain request/response.
type ChatClient struct {
	client *Client
}

// NewChatClient func
func NewChatClient(client *Client) *ChatClient {
	return &ChatClient{client: client}
}

// ListAdmins func - GET /api/admins
func (a *ChatClient) ListAdmins(ctx context.Context) ([]domain.AdminContact, error) {
	var records []userRecord
	if err := a.client.doJSON(ctx, http.MethodGet, "/api/admins", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	admins := make([]domain.AdminContact, 0, len(records))
	for _, record := range records {
		admins = append(admins, domain.AdminContact{
			UserID: record.UserID.String(),
			Name:   record.Name,
		})
	}
	return admins, nil
}

// Messages func - GET /api/get_messages?sender_id=...&receiver_id=...
func (a *ChatClient) Messages(ctx context.Context, senderID, receiverID string) ([]domain.ChatMessage, error) {
	var records []messageRecord
	path := fmt.Sprintf("/api/get_messages?sender_id=%s&receiver_id=%s",
		url.QueryEscape(senderID), url.QueryEscape(receiverID))
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(records))
	for _, record := range records {
		messages = append(messages, record.toMessage())
	}
	return messages, nil
}

// SendMessage func - POST /api/send_messages
func (a *ChatClient) SendMessage(ctx context.Context, message domain.ChatMessage) error {
	body := map[string]string{
		"message_id":  message.MessageID,
		"sender_id":   message.SenderID,
		"receiver_id": message.ReceiverID,
		"message":     message.Body,
	}
	if err := a.client.doJSON(ctx, http.MethodPost, "/api/send_messages", body, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// ChatPartners func - GET /api/users_chatted_with_admin?admin_id=...
func (a *ChatClient) ChatPartners(ctx context.Context, adminID string) ([]domain.ChatPartner, error) {
	var records []userRecord
	path := "/api/users_chatted_with_admin?admin_id=" + url.QueryEscape(adminID)
	if err := a.client.doJSON(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list chat partners: %w", err)
	}

	partners := make([]domain.ChatPartner, 0, len(records))
	for _, record := range records {
		partners = append(partners, domain.ChatPartner{
			UserID: record.UserID.String(),
			Name:   record.Name,
			Email:  record.Email,
		})
	}
	return partners, nil
}

// messageRecord represents one row of GET /api/get_messages
type messageRecord struct {
	MessageID  flexibleID `json:"message_id"`
	SenderID   flexibleID `json:"sender_id"`
	ReceiverID flexibleID `json:"receiver_id"`
	Message    string     `json:"message"`
	SentAt     string     `json:"sent_at"`
}

func (r messageRecord) toMessage() domain.ChatMessage {
	msg := domain.ChatMessage{
		MessageID:  r.MessageID.String(),
		SenderID:   r.SenderID.String(),
		ReceiverID: r.ReceiverID.String(),
		Body:       r.Message,
	}
	if ts, err := time.Parse(time.RFC3339, r.SentAt); err == nil {
		msg.SentAt = &ts
	}
	return msg
}
