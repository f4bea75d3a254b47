package output

import (
	"context"

	"storefront/internal/domain"
)

// ChatAPI interface - Output port
// Support-chat history and sending, over plain HTTP. Real-time delivery goes
// through ChatStream instead.
type ChatAPI interface {
	ListAdmins(ctx context.Context) ([]domain.AdminContact, error)
	Messages(ctx context.Context, senderID, receiverID string) ([]domain.ChatMessage, error)
	SendMessage(ctx context.Context, message domain.ChatMessage) error
	ChatPartners(ctx context.Context, adminID string) ([]domain.ChatPartner, error)
}

// ChatStream interface - Output port
// Subscription to the backend's socket channel, used only for message fan-out.
// Delivery guarantees are the socket server's business; subscribers that fall
// behind lose messages.
type ChatStream interface {
	// Subscribe registers a consumer and returns the channel live messages
	// arrive on. The channel is closed when the stream shuts down.
	Subscribe(consumerID string) (<-chan domain.ChatMessage, error)

	// Unsubscribe removes a consumer. Idempotent.
	Unsubscribe(consumerID string)

	// Close tears the connection down and closes all subscriber channels.
	Close() error
}
