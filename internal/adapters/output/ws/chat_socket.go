package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ChatSocket implements the ChatStream port
var _ output.ChatStream = (*ChatSocket)(nil)

// Reconnect configuration constants
const (
	initialReconnectDelay = 1 * time.Second
	maxReconnectDelay     = 30 * time.Second
	subscriberBufferSize  = 16
)

// ChatSocket struct - Output adapter subscribed to the backend's socket
// channel. The channel is used only for message fan-out: every frame is a
// chat message, decoded and broadcast to all in-process subscribers. Slow
// subscribers lose messages rather than stalling the read loop.
type ChatSocket struct {
	url      string
	deviceID string

	mu          sync.Mutex
	subscribers map[string]chan domain.ChatMessage
	conn        *websocket.Conn
	closed      bool
	done        chan struct{}
}

// NewChatSocket func - Dials in the background; the adapter is usable (and
// silently message-less) while the socket server is unreachable.
func NewChatSocket(socketURL, deviceID string) *ChatSocket {
	s := &ChatSocket{
		url:         socketURL,
		deviceID:    deviceID,
		subscribers: make(map[string]chan domain.ChatMessage),
		done:        make(chan struct{}),
	}
	go s.run()
	return s
}

// Subscribe func
func (s *ChatSocket) Subscribe(consumerID string) (<-chan domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("chat socket closed")
	}
	if ch, exists := s.subscribers[consumerID]; exists {
		return ch, nil
	}
	ch := make(chan domain.ChatMessage, subscriberBufferSize)
	s.subscribers[consumerID] = ch
	return ch, nil
}

// Unsubscribe func - Idempotent.
func (s *ChatSocket) Unsubscribe(consumerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, exists := s.subscribers[consumerID]; exists {
		delete(s.subscribers, consumerID)
		close(ch)
	}
}

// Close func - Tears down the connection and closes all subscriber channels.
func (s *ChatSocket) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	// Closing the live connection unblocks the read loop; waiting for the
	// peer to drop would leave the run goroutine hanging.
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	s.mu.Unlock()
	return nil
}

// run dials the socket server and pumps frames until Close. Reconnects with
// capped exponential backoff; delivery guarantees stay with the socket server.
func (s *ChatSocket) run() {
	delay := initialReconnectDelay
	for {
		select {
		case <-s.done:
			return
		default:
		}

		// The device id identifies this gateway instance to the socket server,
		// signed in or not.
		header := http.Header{}
		header.Set("X-Device-ID", s.deviceID)
		conn, _, err := websocket.DefaultDialer.Dial(s.url, header)
		if err != nil {
			logrus.Warnf("Chat socket dial failed: %v, retrying in %v", err, delay)
			select {
			case <-s.done:
				return
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxReconnectDelay {
				delay = maxReconnectDelay
			}
			continue
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conn = conn
		s.mu.Unlock()

		logrus.Info("Chat socket connected: ", s.url)
		delay = initialReconnectDelay
		s.readLoop(conn)

		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		conn.Close()
	}
}

// readLoop pumps frames from one connection until it breaks or Close is called.
func (s *ChatSocket) readLoop(conn *websocket.Conn) {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			logrus.Warnf("Chat socket read failed: %v", err)
			return
		}

		var frame messageFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			logrus.Warnf("Skipping malformed chat frame: %v", err)
			continue
		}

		s.broadcast(frame.toMessage())
	}
}

// broadcast fans a message out to every subscriber. Non-blocking sends: a full
// subscriber buffer means that subscriber misses the message.
func (s *ChatSocket) broadcast(message domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subscribers {
		select {
		case ch <- message:
		default:
			logrus.Warnf("Chat subscriber %s is slow, dropping message", id)
		}
	}
}

// messageFrame is the wire shape of one socket frame.
type messageFrame struct {
	MessageID  string `json:"message_id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Message    string `json:"message"`
	SentAt     string `json:"sent_at"`
}

func (f messageFrame) toMessage() domain.ChatMessage {
	msg := domain.ChatMessage{
		MessageID:  f.MessageID,
		SenderID:   f.SenderID,
		ReceiverID: f.ReceiverID,
		Body:       f.Message,
	}
	if ts, err := time.Parse(time.RFC3339, f.SentAt); err == nil {
		msg.SentAt = &ts
	}
	return msg
}
