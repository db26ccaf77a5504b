package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/telemed-chat-service/internal/config"
	"github.com/s21platform/telemed-chat-service/internal/model"
	"github.com/s21platform/telemed-chat-service/internal/repository/postgres"
)

// Первое сообщение темы из внешнего потока; диалог создаётся здесь,
// если его ещё нет.
type IntakeMessage struct {
	PatientID    string `json:"patient_id"`
	Topic        string `json:"topic"`
	SenderRole   string `json:"sender_role"`
	Content      string `json:"content"`
	IsAttachment bool   `json:"is_attachment"`
}

type DBRepo interface {
	GetPatientConversationByTopic(ctx context.Context, patientID, topic string) (*model.Conversation, error)
	CreateConversation(ctx context.Context, conversation *model.Conversation) (string, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	ReopenConversation(ctx context.Context, conversationID string) error
}

type CentrifugeClient interface {
	Broadcast(ctx context.Context, channels []string, data model.Message) error
}

type Handler struct {
	repository       DBRepo
	centrifugeClient CentrifugeClient
}

func New(repo DBRepo, centrifugeClient CentrifugeClient) *Handler {
	return &Handler{
		repository:       repo,
		centrifugeClient: centrifugeClient,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("IntakeHandler")

	var msg IntakeMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal intake message: %v", err))
		return
	}

	if msg.PatientID == "" || msg.Topic == "" {
		logger.Error("intake message is missing patient_id or topic")
		return
	}

	patientID, err := uuid.Parse(msg.PatientID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse patient id: %v", err))
		return
	}

	conversation, err := h.repository.GetPatientConversationByTopic(ctx, msg.PatientID, msg.Topic)
	if errors.Is(err, postgres.ErrConversationNotFound) {
		conversation = &model.Conversation{
			PatientID: patientID,
			Topic:     msg.Topic,
			Status:    model.UnreadStatus,
		}

		conversationID, err := h.repository.CreateConversation(ctx, conversation)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
			return
		}
		conversation.ID = uuid.MustParse(conversationID)
	} else if err != nil {
		logger.Error(fmt.Sprintf("failed to find conversation: %v", err))
		return
	}

	senderRole := model.Role(msg.SenderRole)
	if senderRole == "" {
		senderRole = model.SystemRole
	}

	message := model.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderRole:     senderRole,
		Content:        msg.Content,
		IsAttachment:   msg.IsAttachment,
		CreatedAt:      time.Now(),
	}

	if err := h.repository.SaveMessage(ctx, &message); err != nil {
		logger.Error(fmt.Sprintf("failed to save intake message: %v", err))
		return
	}

	if err := h.repository.ReopenConversation(ctx, conversation.ID.String()); err != nil {
		logger.Error(fmt.Sprintf("failed to reopen conversation: %v", err))
	}

	channels := []string{
		model.PatientChannel(conversation.PatientID.String()),
		model.StaffChannel,
	}
	if conversation.ProviderID != nil {
		channels = append(channels, model.ProviderChannel(conversation.ProviderID.String()))
	}

	if err := h.centrifugeClient.Broadcast(ctx, channels, message); err != nil {
		logger.Error(fmt.Sprintf("failed to publish intake message: %v", err))
	}
}
