//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

type HistoryClient interface {
	GetConversationMessages(ctx context.Context, conversationID uuid.UUID, page, limit int64) (*model.MessagePage, error)
	GetConversationSummaries(ctx context.Context) (model.ConversationSummaryList, error)
	UpdateConversationStatus(ctx context.Context, conversationID uuid.UUID, status model.ConversationStatus) (*model.Conversation, error)
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID) error
}
