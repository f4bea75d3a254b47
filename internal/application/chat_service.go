package application

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check
var _ input.ChatService = (*ChatService)(nil)

// ChatService struct - Application service for support chat. History and
// sending go over HTTP; live delivery comes from the socket subscription.
type ChatService struct {
	api    output.ChatAPI
	stream output.ChatStream
	cart   input.CartStore
}

// NewChatService func
func NewChatService(api output.ChatAPI, stream output.ChatStream, cart input.CartStore) *ChatService {
	return &ChatService{
		api:    api,
		stream: stream,
		cart:   cart,
	}
}

// ListAdmins func - Use case: admins a user can open a conversation with
func (s *ChatService) ListAdmins(ctx context.Context) ([]domain.AdminContact, error) {
	return s.api.ListAdmins(ctx)
}

// History func - Use case: conversation history with one partner
func (s *ChatService) History(ctx context.Context, partnerID string) ([]domain.ChatMessage, error) {
	session := s.cart.Session()
	if session == nil {
		return nil, fmt.Errorf("chat history: %w", domain.ErrUnauthenticated)
	}
	return s.api.Messages(ctx, session.UserID, partnerID)
}

// Send func - Use case: send a message to a partner.
// A correlation id is minted here so the presentation layer can match the
// echo that comes back over the socket.
func (s *ChatService) Send(ctx context.Context, receiverID, body string) (*domain.ChatMessage, error) {
	session := s.cart.Session()
	if session == nil {
		return nil, fmt.Errorf("send message: %w", domain.ErrUnauthenticated)
	}

	id, err := uuid.NewRandom() // v4
	if err != nil {
		return nil, err
	}

	message := domain.ChatMessage{
		MessageID:  id.String(),
		SenderID:   session.UserID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := s.api.SendMessage(ctx, message); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &message, nil
}

// ChatPartners func - Use case: admin lists users with open conversations
func (s *ChatService) ChatPartners(ctx context.Context) ([]domain.ChatPartner, error) {
	session := s.cart.Session()
	if !session.IsAdmin() {
		return nil, fmt.Errorf("chat partners: %w", domain.ErrUnauthenticated)
	}
	return s.api.ChatPartners(ctx, session.UserID)
}

// Subscribe func - Use case: live message feed for the current consumer.
// Returns the channel and an unsubscribe func. Every subscription gets its
// own minted consumer id, so two concurrent streams for the same identity
// each receive every message and one stream's disconnect cannot close the
// other's channel. Delivery is best-effort fan-out only.
func (s *ChatService) Subscribe() (<-chan domain.ChatMessage, func(), error) {
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return nil, nil, err
	}
	consumerID := "guest:" + id.String()
	if session := s.cart.Session(); session != nil {
		consumerID = session.UserID + ":" + id.String()
	}

	ch, err := s.stream.Subscribe(consumerID)
	if err != nil {
		return nil, nil, err
	}
	cancel := func() { s.stream.Unsubscribe(consumerID) }
	return ch, cancel, nil
}
