//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package pager

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

type HistoryFetcher interface {
	GetConversationMessages(ctx context.Context, conversationID uuid.UUID, page, limit int64) (*model.MessagePage, error)
}

type Viewport interface {
	ContentHeight() int
	ScrollBy(delta int)
}
