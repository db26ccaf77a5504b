package pager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/chatlog"
	"github.com/s21platform/telemed-chat-service/internal/model"
)

const (
	DefaultLimit = int64(50)

	TopProximityThreshold = 100
)

type Cursor struct {
	Page        int64
	HasNextPage bool
}

// После вставки страницы offset сдвигается на разницу высот, чтобы
// видимый контент не прыгал.
type Pager struct {
	mu       sync.Mutex
	fetcher  HistoryFetcher
	log      *chatlog.Log
	limit    int64
	timeout  time.Duration
	active      uuid.UUID
	viewport    Viewport
	cursor      Cursor
	inFlightFor uuid.UUID
}

func New(fetcher HistoryFetcher, log *chatlog.Log, limit int64, timeout time.Duration) *Pager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Pager{
		fetcher: fetcher,
		log:     log,
		limit:   limit,
		timeout: timeout,
	}
}

func (p *Pager) Bind(conversationID uuid.UUID, viewport Viewport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = conversationID
	p.viewport = viewport
	p.cursor = Cursor{Page: 0, HasNextPage: true}
}

// Reset после полной перезагрузки истории: курсор на первую страницу.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cursor = Cursor{Page: 1, HasNextPage: true}
	p.inFlightFor = uuid.Nil
}

func (p *Pager) Unbind() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = uuid.Nil
	p.viewport = nil
	p.cursor = Cursor{}
}

func (p *Pager) Cursor() Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cursor
}

func (p *Pager) MaybeLoadOlder(ctx context.Context, conversationID uuid.UUID, distanceFromTop int) (*model.MessagePage, error) {
	if distanceFromTop > TopProximityThreshold {
		return nil, nil
	}
	return p.LoadOlderPage(ctx, conversationID)
}

// No-op, если запрос для этого диалога уже в полёте, старых страниц нет
// или диалог не привязан. При ошибке курсор не меняется, повтор возможен.
func (p *Pager) LoadOlderPage(ctx context.Context, conversationID uuid.UUID) (*model.MessagePage, error) {
	p.mu.Lock()
	if p.inFlightFor == conversationID || !p.cursor.HasNextPage || p.active != conversationID || p.viewport == nil {
		p.mu.Unlock()
		return nil, nil
	}
	p.inFlightFor = conversationID
	anchorHeight := p.viewport.ContentHeight()
	nextPage := p.cursor.Page + 1
	p.mu.Unlock()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	page, err := p.fetcher.GetConversationMessages(ctx, conversationID, nextPage, p.limit)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inFlightFor == conversationID {
		p.inFlightFor = uuid.Nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %d: %w", nextPage, err)
	}

	// Диалог успели переключить, ответ больше не релевантен.
	if p.active != conversationID || p.viewport == nil {
		return nil, nil
	}

	p.log.Prepend(page.Messages)
	p.cursor.Page = page.Meta.Page
	p.cursor.HasNextPage = page.Meta.HasNextPage

	if delta := p.viewport.ContentHeight() - anchorHeight; delta != 0 {
		p.viewport.ScrollBy(delta)
	}

	return page, nil
}
