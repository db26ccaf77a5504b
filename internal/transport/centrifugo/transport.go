package centrifugo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

type Subscription struct {
	Channel string
	Token   string
}

// Провайдер держит два транспорта: staff и свой dashboard-канал.
type Transport struct {
	wsURL         string
	connectToken  string
	subscriptions []Subscription

	conn      *websocket.Conn
	events    chan model.RealtimeEvent
	done      chan struct{}
	closeOnce sync.Once
}

func NewTransport(wsURL, connectToken string, subscriptions []Subscription) *Transport {
	return &Transport{
		wsURL:         wsURL,
		connectToken:  connectToken,
		subscriptions: subscriptions,
		events:        make(chan model.RealtimeEvent, 64),
		done:          make(chan struct{}),
	}
}

func (t *Transport) Connect(ctx context.Context) error {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, t.wsURL, nil)
	if err != nil {
		return fmt.Errorf("failed to dial centrifugo: %w", err)
	}
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.conn = conn

	if err := conn.WriteJSON(command{ID: 1, Connect: &connectRequest{Token: t.connectToken}}); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to send connect command: %w", err)
	}

	for i, sub := range t.subscriptions {
		cmd := command{
			ID:        uint32(i + 2), //nolint:gosec // счётчик подписок
			Subscribe: &subscribeRequest{Channel: sub.Channel, Token: sub.Token},
		}
		if err := conn.WriteJSON(cmd); err != nil {
			_ = conn.Close()
			return fmt.Errorf("failed to subscribe to %s: %w", sub.Channel, err)
		}
	}

	go t.readLoop()

	return nil
}

func (t *Transport) Events() <-chan model.RealtimeEvent {
	return t.events
}

func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		if t.conn != nil {
			_ = t.conn.Close()
		}
	})
	return nil
}

func (t *Transport) readLoop() {
	defer close(t.events)

	for {
		_, raw, err := t.conn.ReadMessage()
		if err != nil {
			return
		}

		// Пустая команда: ping сервера, отвечаем тем же.
		if len(raw) == 2 && string(raw) == "{}" {
			_ = t.conn.WriteMessage(websocket.TextMessage, []byte("{}"))
			continue
		}

		var rep reply
		if err := json.Unmarshal(raw, &rep); err != nil {
			continue
		}
		if rep.Push == nil || rep.Push.Pub == nil {
			continue
		}

		var msg model.Message
		if err := json.Unmarshal(rep.Push.Pub.Data, &msg); err != nil {
			continue
		}

		select {
		case t.events <- model.RealtimeEvent{Channel: rep.Push.Channel, Message: msg}:
		case <-t.done:
			return
		}
	}
}

// Кадры клиентского протокола Centrifugo (JSON).
type command struct {
	ID        uint32            `json:"id,omitempty"`
	Connect   *connectRequest   `json:"connect,omitempty"`
	Subscribe *subscribeRequest `json:"subscribe,omitempty"`
}

type connectRequest struct {
	Token string `json:"token,omitempty"`
}

type subscribeRequest struct {
	Channel string `json:"channel"`
	Token   string `json:"token,omitempty"`
}

type reply struct {
	Push *push `json:"push,omitempty"`
}

type push struct {
	Channel string       `json:"channel"`
	Pub     *publication `json:"pub,omitempty"`
}

type publication struct {
	Data json.RawMessage `json:"data"`
}
