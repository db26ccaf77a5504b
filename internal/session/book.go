package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

const (
	previewLimit      = 120
	attachmentPreview = "[attachment]"
)

// У книги свой мьютекс: роутер пишет сюда, минуя блокировку сессии.
type Book struct {
	mu        sync.Mutex
	summaries map[uuid.UUID]model.ConversationSummary
}

func NewBook() *Book {
	return &Book{
		summaries: make(map[uuid.UUID]model.ConversationSummary),
	}
}

func (b *Book) Put(summary model.ConversationSummary) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.summaries[summary.ConversationID] = summary
}

func (b *Book) ApplyMessage(msg model.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	summary, ok := b.summaries[msg.ConversationID]
	if !ok {
		summary = model.ConversationSummary{
			ConversationID: msg.ConversationID,
			Status:         model.UnreadStatus,
		}
	}

	preview := msg.Content
	if msg.IsAttachment {
		preview = attachmentPreview
	}
	if len([]rune(preview)) > previewLimit {
		preview = string([]rune(preview)[:previewLimit])
	}

	createdAt := msg.CreatedAt
	summary.LastMessagePreview = &preview
	summary.LastMessageAt = &createdAt

	if summary.Status == model.ResolvedStatus {
		summary.Status = model.UnresolvedStatus
	}
	if msg.SenderRole == model.ProviderRole {
		summary.ProviderAssigned = true
	}

	b.summaries[msg.ConversationID] = summary
}

func (b *Book) SetStatus(conversationID uuid.UUID, status model.ConversationStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	summary, ok := b.summaries[conversationID]
	if !ok {
		return
	}
	summary.Status = status
	b.summaries[conversationID] = summary
}

func (b *Book) Get(conversationID uuid.UUID) (model.ConversationSummary, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	summary, ok := b.summaries[conversationID]
	return summary, ok
}

func (b *Book) ParticipantRoles(conversationID uuid.UUID) []model.Role {
	b.mu.Lock()
	defer b.mu.Unlock()

	roles := []model.Role{model.PatientRole, model.AdminRole}
	if summary, ok := b.summaries[conversationID]; ok && summary.ProviderAssigned {
		roles = append(roles, model.ProviderRole)
	}
	return roles
}

// Свежие сверху.
func (b *Book) List() model.ConversationSummaryList {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(model.ConversationSummaryList, 0, len(b.summaries))
	for _, summary := range b.summaries {
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool {
		left, right := out[i].LastMessageAt, out[j].LastMessageAt
		switch {
		case left == nil:
			return false
		case right == nil:
			return true
		default:
			return left.After(*right)
		}
	})

	return out
}
