//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/s21platform/telemed-chat-service/internal/generated"
	"github.com/s21platform/telemed-chat-service/internal/model"
)

type DBRepo interface {
	GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error)
	GetConversationMessages(ctx context.Context, conversationID string, page, limit int64) (*model.MessageList, error)
	CountConversationMessages(ctx context.Context, conversationID string) (int64, error)
	GetConversationSummary(ctx context.Context, conversationID string, role model.Role) (*model.ConversationSummary, error)
	GetConversationSummaries(ctx context.Context, userUUID string, role model.Role) (*model.ConversationSummaryList, error)
	IsConversationParticipant(ctx context.Context, conversationID, userUUID string, role model.Role) (bool, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	UpdateConversationStatus(ctx context.Context, conversationID string, status model.ConversationStatus) (*model.Conversation, error)
	ReopenConversation(ctx context.Context, conversationID string) error
	MarkConversationRead(ctx context.Context, conversationID string, role model.Role) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type CentrifugeClient interface {
	Broadcast(ctx context.Context, channels []string, data model.Message) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateUpdateStatus(req *api.UpdateConversationStatusRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string, role model.Role) (string, int64, error)
	GenerateSubscribeToken(userID string, role model.Role, channel string) (string, int64, error)
}
