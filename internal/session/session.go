package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/chatlog"
	"github.com/s21platform/telemed-chat-service/internal/lifecycle"
	"github.com/s21platform/telemed-chat-service/internal/model"
	"github.com/s21platform/telemed-chat-service/internal/pager"
	"github.com/s21platform/telemed-chat-service/internal/router"
	"github.com/s21platform/telemed-chat-service/internal/unread"
)

// Состояние одного зрителя: лог открытого диалога, курсор, машина
// статусов, счётчики и проекция списка. Мутации только через операции сессии.
type Session struct {
	role    model.Role
	history HistoryClient
	log     *chatlog.Log
	machine *lifecycle.Machine
	unread  *unread.Aggregator
	pager   *pager.Pager
	router  *router.Router
	book    *Book

	mu     sync.Mutex
	active uuid.UUID
}

func New(role model.Role, history HistoryClient, transports []router.Transport, pageLimit int64, fetchTimeout time.Duration) *Session {
	log := chatlog.New()
	machine := lifecycle.New()
	counters := unread.New()
	book := NewBook()

	return &Session{
		role:    role,
		history: history,
		log:     log,
		machine: machine,
		unread:  counters,
		pager:   pager.New(history, log, pageLimit, fetchTimeout),
		router:  router.New(transports, log, machine, counters, book),
		book:    book,
	}
}

func (s *Session) Start(ctx context.Context) error {
	if err := s.router.Start(ctx); err != nil {
		return fmt.Errorf("failed to start realtime router: %w", err)
	}
	return nil
}

func (s *Session) Close() error {
	s.CloseConversation()
	return s.router.Close()
}

// Повторный Open другого диалога полностью сбрасывает состояние,
// ответы в полёте для прежнего отбрасываются.
func (s *Session) Open(ctx context.Context, conversationID uuid.UUID, viewport pager.Viewport) error {
	s.mu.Lock()
	s.router.SetActive(uuid.Nil)
	s.log.Clear()
	s.machine.Seed(model.UnreadStatus)
	s.pager.Bind(conversationID, viewport)
	s.active = conversationID
	s.mu.Unlock()

	page, err := s.pager.LoadOlderPage(ctx, conversationID)
	if err != nil {
		return fmt.Errorf("failed to open conversation: %w", err)
	}

	s.mu.Lock()

	if s.active != conversationID {
		s.mu.Unlock()
		return nil
	}

	if page != nil && page.Summary != nil {
		s.machine.Seed(page.Summary.Status)
		s.book.Put(*page.Summary)
		s.unread.SetAbsolute(s.role, conversationID, page.Summary.UnreadCount)
	}

	s.acknowledgeRead(conversationID)
	s.router.SetActive(conversationID)
	s.mu.Unlock()

	// Ack оптимистичен, расхождение закроет ближайший resync.
	_ = s.history.MarkConversationRead(ctx, conversationID)

	return nil
}

func (s *Session) acknowledgeRead(conversationID uuid.UUID) {
	if amount := s.unread.Count(s.role, conversationID); amount > 0 {
		s.unread.OnRead(s.role, conversationID, amount)
	}
	if s.machine.OnRead() {
		s.book.SetStatus(conversationID, s.machine.Status())
	}
}

func (s *Session) CloseConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.router.SetActive(uuid.Nil)
	s.pager.Unbind()
	s.log.Clear()
	s.active = uuid.Nil
}

func (s *Session) Scroll(ctx context.Context, distanceFromTop int) error {
	s.mu.Lock()
	conversationID := s.active
	s.mu.Unlock()

	if conversationID == uuid.Nil {
		return nil
	}

	_, err := s.pager.MaybeLoadOlder(ctx, conversationID, distanceFromTop)
	return err
}

// Конфликт отдаётся вызывающему как есть и не ретраится.
func (s *Session) UpdateStatus(ctx context.Context, status model.ConversationStatus) error {
	s.mu.Lock()
	conversationID := s.active
	s.mu.Unlock()

	if conversationID == uuid.Nil {
		return fmt.Errorf("no active conversation")
	}

	conversation, err := s.history.UpdateConversationStatus(ctx, conversationID, status)
	if err != nil {
		return fmt.Errorf("failed to update conversation status: %w", err)
	}

	s.machine.Set(conversation.Status)
	s.book.SetStatus(conversationID, conversation.Status)

	return nil
}

func (s *Session) Resolve(ctx context.Context) error {
	return s.UpdateStatus(ctx, model.ResolvedStatus)
}

// Последнее авторитетное значение побеждает локальные дельты. После
// обрыва транспорта дополнительно перечитывается открытый диалог.
func (s *Session) Resync(ctx context.Context) error {
	summaries, err := s.history.GetConversationSummaries(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch conversation summaries: %w", err)
	}

	for _, summary := range summaries {
		s.book.Put(summary)
		s.unread.SetAbsolute(s.role, summary.ConversationID, summary.UnreadCount)
	}

	if !s.router.Degraded() {
		return nil
	}

	s.mu.Lock()
	conversationID := s.active
	s.mu.Unlock()

	if conversationID != uuid.Nil {
		page, err := s.history.GetConversationMessages(ctx, conversationID, 1, pager.DefaultLimit)
		if err != nil {
			return fmt.Errorf("failed to refetch conversation history: %w", err)
		}

		s.mu.Lock()
		if s.active != conversationID {
			// Диалог успели переключить: ответ устарел, следующий тик
			// перечитает уже открытый.
			s.mu.Unlock()
			return nil
		}
		s.log.Replace(page.Messages)
		s.pager.Reset()
		if page.Summary != nil {
			s.machine.Seed(page.Summary.Status)
		}
		s.mu.Unlock()
	}

	s.router.ClearDegraded()

	return nil
}

func (s *Session) RunResync(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Resync(ctx); err != nil {
				continue
			}
		}
	}
}

func (s *Session) Messages() model.MessageList {
	return s.log.Snapshot()
}

func (s *Session) Status() model.ConversationStatus {
	return s.machine.Status()
}

func (s *Session) Cursor() pager.Cursor {
	return s.pager.Cursor()
}

func (s *Session) UnreadTotal() int64 {
	return s.unread.Total(s.role)
}

func (s *Session) Summaries() model.ConversationSummaryList {
	list := s.book.List()
	for i := range list {
		list[i].UnreadCount = s.unread.Count(s.role, list[i].ConversationID)
	}
	return list
}
