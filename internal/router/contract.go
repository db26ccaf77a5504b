//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package router

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

type Transport interface {
	Connect(ctx context.Context) error
	Events() <-chan model.RealtimeEvent
	Close() error
}

type MessageLog interface {
	Append(messages model.MessageList)
	Contains(id uuid.UUID) bool
}

type StatusMachine interface {
	OnMessage() bool
}

type UnreadCounter interface {
	OnMessageArrived(sender model.Role, conversationID uuid.UUID, participants []model.Role)
}

// Обновляется любым принятым событием, независимо от открытого диалога.
type SummaryBook interface {
	ApplyMessage(msg model.Message)
	ParticipantRoles(conversationID uuid.UUID) []model.Role
}
