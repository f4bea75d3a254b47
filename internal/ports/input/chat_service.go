package input

import (
	"context"

	"storefront/internal/domain"
)

// ChatService interface - Input port (use case)
// Support chat: history and sending over HTTP, live delivery via subscription.
type ChatService interface {
	ListAdmins(ctx context.Context) ([]domain.AdminContact, error)
	History(ctx context.Context, partnerID string) ([]domain.ChatMessage, error)
	Send(ctx context.Context, receiverID, body string) (*domain.ChatMessage, error)
	ChatPartners(ctx context.Context) ([]domain.ChatPartner, error)
	Subscribe() (<-chan domain.ChatMessage, func(), error)
}
