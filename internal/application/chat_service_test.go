package application

import (
	"context"
	"strings"
	"sync"
	"testing"

	"storefront/internal/domain"
)

// MockChatAPI implements output.ChatAPI for testing
type MockChatAPI struct {
	// Captured values for assertions
	SentMessages []domain.ChatMessage
}

func (m *MockChatAPI) ListAdmins(ctx context.Context) ([]domain.AdminContact, error) {
	return []domain.AdminContact{{UserID: "admin-1", Name: "Support"}}, nil
}

func (m *MockChatAPI) Messages(ctx context.Context, senderID, receiverID string) ([]domain.ChatMessage, error) {
	return nil, nil
}

func (m *MockChatAPI) SendMessage(ctx context.Context, message domain.ChatMessage) error {
	m.SentMessages = append(m.SentMessages, message)
	return nil
}

func (m *MockChatAPI) ChatPartners(ctx context.Context, adminID string) ([]domain.ChatPartner, error) {
	return nil, nil
}

// MockChatStream implements output.ChatStream with the same per-consumer
// channel semantics as the socket adapter.
type MockChatStream struct {
	mu       sync.Mutex
	channels map[string]chan domain.ChatMessage
}

func NewMockChatStream() *MockChatStream {
	return &MockChatStream{channels: make(map[string]chan domain.ChatMessage)}
}

func (m *MockChatStream) Subscribe(consumerID string) (<-chan domain.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, exists := m.channels[consumerID]; exists {
		return ch, nil
	}
	ch := make(chan domain.ChatMessage, 16)
	m.channels[consumerID] = ch
	return ch, nil
}

func (m *MockChatStream) Unsubscribe(consumerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ch, exists := m.channels[consumerID]; exists {
		delete(m.channels, consumerID)
		close(ch)
	}
}

func (m *MockChatStream) Close() error {
	return nil
}

// Broadcast fans a message out to every registered consumer.
func (m *MockChatStream) Broadcast(message domain.ChatMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.channels {
		ch <- message
	}
}

func (m *MockChatStream) ConsumerIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.channels))
	for id := range m.channels {
		ids = append(ids, id)
	}
	return ids
}

func newChatServiceForTest(stream *MockChatStream) (*ChatService, *CartService) {
	cart := NewCartService(NewMockLocalState(), &MockCartAPI{})
	return NewChatService(&MockChatAPI{}, stream, cart), cart
}

// TestConcurrentGuestStreamsEachGetEveryMessage tests that two simultaneous
// guest subscriptions receive their own copy of a broadcast message rather
// than splitting one shared channel.
func TestConcurrentGuestStreamsEachGetEveryMessage(t *testing.T) {
	stream := NewMockChatStream()
	chat, _ := newChatServiceForTest(stream)

	first, cancelFirst, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	defer cancelFirst()
	second, cancelSecond, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("second subscribe failed: %v", err)
	}
	defer cancelSecond()

	ids := stream.ConsumerIDs()
	if len(ids) != 2 {
		t.Fatalf("expected two distinct consumers, got %v", ids)
	}

	sent := domain.ChatMessage{SenderID: "admin-1", ReceiverID: "guest", Body: "hello"}
	stream.Broadcast(sent)

	for i, ch := range []<-chan domain.ChatMessage{first, second} {
		select {
		case got := <-ch:
			if got.Body != "hello" {
				t.Errorf("stream %d: expected broadcast message, got %+v", i, got)
			}
		default:
			t.Errorf("stream %d: broadcast message never arrived", i)
		}
	}
}

// TestCancellingOneStreamLeavesTheOtherOpen tests that one stream's
// disconnect does not close a concurrent stream's channel.
func TestCancellingOneStreamLeavesTheOtherOpen(t *testing.T) {
	stream := NewMockChatStream()
	chat, _ := newChatServiceForTest(stream)

	_, cancelFirst, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	second, cancelSecond, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("second subscribe failed: %v", err)
	}
	defer cancelSecond()

	cancelFirst()

	stream.Broadcast(domain.ChatMessage{SenderID: "admin-1", Body: "still here"})
	select {
	case got, open := <-second:
		if !open {
			t.Fatal("second stream's channel was closed by the first stream's disconnect")
		}
		if got.Body != "still here" {
			t.Errorf("expected broadcast after sibling disconnect, got %+v", got)
		}
	default:
		t.Error("second stream stopped receiving after sibling disconnect")
	}
}

// TestSubscribePrefixesConsumerWithSessionUser tests the consumer id shape
// for guests and signed-in users.
func TestSubscribePrefixesConsumerWithSessionUser(t *testing.T) {
	stream := NewMockChatStream()
	chat, cart := newChatServiceForTest(stream)

	_, cancelGuest, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("guest subscribe failed: %v", err)
	}
	defer cancelGuest()

	cart.UpdateSession(domain.Session{UserID: "u1", Role: domain.RoleCustomer})
	_, cancelUser, err := chat.Subscribe()
	if err != nil {
		t.Fatalf("user subscribe failed: %v", err)
	}
	defer cancelUser()

	var sawGuest, sawUser bool
	for _, id := range stream.ConsumerIDs() {
		switch {
		case strings.HasPrefix(id, "guest:"):
			sawGuest = true
		case strings.HasPrefix(id, "u1:"):
			sawUser = true
		}
	}
	if !sawGuest || !sawUser {
		t.Errorf("expected guest: and u1: prefixed consumers, got %v", stream.ConsumerIDs())
	}
}

// TestSendMintsCorrelationID tests that a sent message carries a fresh id and
// the session's sender.
func TestSendMintsCorrelationID(t *testing.T) {
	stream := NewMockChatStream()
	api := &MockChatAPI{}
	cart := NewCartService(NewMockLocalState(), &MockCartAPI{})
	chat := NewChatService(api, stream, cart)

	cart.UpdateSession(domain.Session{UserID: "u1", Role: domain.RoleCustomer})
	message, err := chat.Send(context.Background(), "admin-1", "need help")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if message.MessageID == "" {
		t.Error("expected a minted message id")
	}
	if message.SenderID != "u1" || message.ReceiverID != "admin-1" {
		t.Errorf("unexpected addressing: %+v", message)
	}
	if len(api.SentMessages) != 1 || api.SentMessages[0].MessageID != message.MessageID {
		t.Errorf("expected the minted message forwarded to the backend, got %+v", api.SentMessages)
	}
}
