package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Сколько последних id помним для подавления дублей вне активного диалога.
const seenCapacity = 1024

// Одно и то же сообщение легально приходит на двух каналах (staff +
// provider dashboard) и применяется не более одного раза.
type Router struct {
	mu         sync.Mutex
	transports []Transport
	log        MessageLog
	machine    StatusMachine
	unread     UnreadCounter
	summaries  SummaryBook

	active   uuid.UUID
	closed   bool
	degraded bool

	seen      map[uuid.UUID]struct{}
	seenOrder []uuid.UUID

	wg sync.WaitGroup
}

func New(transports []Transport, log MessageLog, machine StatusMachine, unread UnreadCounter, summaries SummaryBook) *Router {
	return &Router{
		transports: transports,
		log:        log,
		machine:    machine,
		unread:     unread,
		summaries:  summaries,
		seen:       make(map[uuid.UUID]struct{}),
	}
}

func (r *Router) Start(ctx context.Context) error {
	for _, t := range r.transports {
		if err := t.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect transport: %w", err)
		}
	}

	for _, t := range r.transports {
		r.wg.Add(1)
		go r.readLoop(t)
	}

	return nil
}

func (r *Router) readLoop(t Transport) {
	defer r.wg.Done()

	for event := range t.Events() {
		r.dispatch(event)
	}

	// Обрыв транспорта: инкрементальные обновления недостоверны до resync.
	r.mu.Lock()
	if !r.closed {
		r.degraded = true
	}
	r.mu.Unlock()
}

// uuid.Nil: ничего не открыто.
func (r *Router) SetActive(conversationID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active = conversationID
}

func (r *Router) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.degraded
}

func (r *Router) ClearDegraded() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.degraded = false
}

// Событие, долетевшее после Close, состояние уже не меняет.
func (r *Router) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	for _, t := range r.transports {
		_ = t.Close()
	}
	r.wg.Wait()

	return nil
}

func (r *Router) dispatch(event model.RealtimeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.degraded {
		return
	}

	msg := event.Message

	if _, ok := r.seen[msg.ID]; ok {
		return
	}
	if r.log.Contains(msg.ID) {
		return
	}
	r.remember(msg.ID)

	// Проекция списка и бейджи обновляются всегда.
	r.summaries.ApplyMessage(msg)
	r.unread.OnMessageArrived(msg.SenderRole, msg.ConversationID, r.summaries.ParticipantRoles(msg.ConversationID))

	if msg.ConversationID != r.active {
		return
	}

	r.log.Append(model.MessageList{msg})
	r.machine.OnMessage()
}

func (r *Router) remember(id uuid.UUID) {
	if len(r.seenOrder) >= seenCapacity {
		oldest := r.seenOrder[0]
		r.seenOrder = r.seenOrder[1:]
		delete(r.seen, oldest)
	}
	r.seen[id] = struct{}{}
	r.seenOrder = append(r.seenOrder, id)
}
