package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/telemed-chat-service/internal/config"
	api "github.com/s21platform/telemed-chat-service/internal/generated"
	"github.com/s21platform/telemed-chat-service/internal/model"
	"github.com/s21platform/telemed-chat-service/internal/pkg/tx"
	"github.com/s21platform/telemed-chat-service/internal/repository/postgres"
)

const defaultPageLimit = int64(50)

type Handler struct {
	repository       DBRepo
	centrifugeClient CentrifugeClient
	validator        Validator
	jwtGenerator     JWTGenerator
}

func New(
	repo DBRepo,
	centrifugeClient CentrifugeClient,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:       repo,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	summaries, err := h.repository.GetConversationSummaries(r.Context(), userUUID, role)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation summaries: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation summaries: %v", err), http.StatusInternalServerError)
		return
	}

	conversations := make([]api.ConversationSummary, len(*summaries))
	for i, summary := range *summaries {
		conversations[i] = toAPISummary(summary)
	}

	response := api.GetConversationsResponse{
		Conversations: conversations,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, conversationId string, params api.GetConversationMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	isParticipant, err := h.repository.IsConversationParticipant(r.Context(), conversationId, userUUID, role)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check conversation access: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check conversation access: %v", err), http.StatusInternalServerError)
		return
	}

	if !isParticipant {
		logger.Error("viewer is not a participant of the conversation")
		h.writeError(w, "viewer is not a participant of the conversation", http.StatusForbidden)
		return
	}

	page := int64(1)
	if params.Page != nil && *params.Page > 0 {
		page = *params.Page
	}

	limit := defaultPageLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}

	messages, err := h.repository.GetConversationMessages(r.Context(), conversationId, page, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	total, err := h.repository.CountConversationMessages(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to count messages: %v", err), http.StatusInternalServerError)
		return
	}

	summary, err := h.repository.GetConversationSummary(r.Context(), conversationId, role)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversation summary: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get conversation summary: %v", err), http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	apiSummary := toAPISummary(*summary)
	response := api.GetConversationMessagesResponse{
		Messages: apiMessages,
		Meta: api.PageMeta{
			Page:        page,
			HasNextPage: page*limit < total,
			Total:       total,
		},
		ConversationSummary: &apiSummary,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var message model.Message
	var conversation *model.Conversation
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		isParticipant, err := h.repository.IsConversationParticipant(ctx, conversationId, userUUID, role)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to check conversation access: %v", err))
			return fmt.Errorf("failed to check conversation access: %v", err)
		}

		if !isParticipant {
			logger.Error(fmt.Sprintf("user %s is not a participant of conversation %s", userUUID, conversationId))
			return fmt.Errorf("viewer is not a participant of this conversation")
		}

		conversation, err = h.repository.GetConversation(ctx, conversationId)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to get conversation: %v", err))
			return fmt.Errorf("failed to get conversation: %v", err)
		}

		message = model.Message{
			ID:             uuid.New(),
			ConversationID: uuid.MustParse(conversationId),
			SenderRole:     role,
			Content:        req.Content,
			IsAttachment:   req.IsAttachment,
			CreatedAt:      time.Now(),
		}

		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return fmt.Errorf("failed to save message: %v", err)
		}

		// Новая активность переоткрывает решённый диалог, роль не важна.
		if err := h.repository.ReopenConversation(ctx, conversationId); err != nil {
			logger.Error(fmt.Sprintf("failed to reopen conversation: %v", err))
			return fmt.Errorf("failed to reopen conversation: %v", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	if err := h.centrifugeClient.Broadcast(r.Context(), participantChannels(conversation), message); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message: %v", err))
	}

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UpdateConversationStatus(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateConversationStatus")

	var req api.UpdateConversationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateStatus(&req); err != nil {
		logger.Error(fmt.Sprintf("status validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("status validation failed: %v", err), http.StatusBadRequest)
		return
	}

	conversation, err := h.repository.UpdateConversationStatus(r.Context(), conversationId, model.ConversationStatus(req.Status))
	if errors.Is(err, postgres.ErrConversationNotFound) {
		logger.Error(fmt.Sprintf("conversation %s no longer exists", conversationId))
		h.writeError(w, "conversation no longer exists", http.StatusConflict)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update conversation status: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update conversation status: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.UpdateConversationStatusResponse{
		Conversation: toAPIConversation(*conversation),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) MarkConversationRead(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkConversationRead")

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		isParticipant, err := h.repository.IsConversationParticipant(ctx, conversationId, userUUID, role)
		if err != nil {
			return fmt.Errorf("failed to check conversation access: %v", err)
		}

		if !isParticipant {
			return fmt.Errorf("viewer is not a participant of this conversation")
		}

		if err := h.repository.MarkConversationRead(ctx, conversationId, role); err != nil {
			return fmt.Errorf("failed to mark conversation read: %v", err)
		}

		// Первое прочтение двигает unread -> unresolved.
		conversation, err := h.repository.GetConversation(ctx, conversationId)
		if err != nil {
			return fmt.Errorf("failed to get conversation: %v", err)
		}
		if conversation.Status == model.UnreadStatus {
			if _, err := h.repository.UpdateConversationStatus(ctx, conversationId, model.UnresolvedStatus); err != nil {
				return fmt.Errorf("failed to move conversation to unresolved: %v", err)
			}
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to mark conversation read: %v", err))
		h.writeError(w, fmt.Sprintf("failed to mark conversation read: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, struct{}{}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID, role)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetBatchSubscribeTokens(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBatchSubscribeTokens")

	var req api.GetBatchSubscribeTokensRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, role, ok := viewerFromContext(r.Context())
	if !ok {
		logger.Error("failed to get viewer identity")
		h.writeError(w, "failed to get viewer identity", http.StatusInternalServerError)
		return
	}

	var subscriptions []api.ChannelSubscription

	for _, channel := range req.Channels {
		if !channelAllowed(role, userUUID, channel) {
			logger.Warn(fmt.Sprintf("user %s (%s) is not allowed on channel %s, skipping", userUUID, role, channel))
			continue
		}

		token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, role, channel)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to generate subscribe token for channel %s: %v", channel, err))
			continue
		}

		subscriptions = append(subscriptions, api.ChannelSubscription{
			Channel:   channel,
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}

	response := api.GetBatchSubscribeTokensResponse{
		Subscriptions: subscriptions,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func viewerFromContext(ctx context.Context) (string, model.Role, bool) {
	userUUID, ok := ctx.Value(config.KeyUUID).(string)
	if !ok {
		return "", "", false
	}

	role, ok := ctx.Value(config.KeyRole).(model.Role)
	if !ok {
		return "", "", false
	}

	return userUUID, role, true
}

// Пациент живёт только на своём канале, провайдер на staff и своём
// dashboard-канале, админ на staff.
func channelAllowed(role model.Role, userUUID, channel string) bool {
	switch role {
	case model.PatientRole:
		return channel == model.PatientChannel(userUUID)
	case model.ProviderRole:
		return channel == model.StaffChannel || channel == model.ProviderChannel(userUUID)
	case model.AdminRole:
		return channel == model.StaffChannel
	}
	return false
}

func participantChannels(conversation *model.Conversation) []string {
	channels := []string{
		model.PatientChannel(conversation.PatientID.String()),
		model.StaffChannel,
	}
	if conversation.ProviderID != nil {
		channels = append(channels, model.ProviderChannel(conversation.ProviderID.String()))
	}
	return channels
}

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:             msg.ID.String(),
		ConversationId: msg.ConversationID.String(),
		SenderRole:     string(msg.SenderRole),
		Content:        msg.Content,
		IsAttachment:   msg.IsAttachment,
		CreatedAt:      msg.CreatedAt.Format(time.RFC3339),
	}
}

func toAPISummary(summary model.ConversationSummary) api.ConversationSummary {
	var lastMessageAt *string
	if summary.LastMessageAt != nil {
		timestamp := summary.LastMessageAt.Format(time.RFC3339)
		lastMessageAt = &timestamp
	}

	return api.ConversationSummary{
		ConversationId:     summary.ConversationID.String(),
		LastMessagePreview: summary.LastMessagePreview,
		LastMessageAt:      lastMessageAt,
		Status:             string(summary.Status),
		UnreadCount:        summary.UnreadCount,
		ProviderAssigned:   summary.ProviderAssigned,
	}
}

func toAPIConversation(conversation model.Conversation) api.Conversation {
	var providerID *string
	if conversation.ProviderID != nil {
		id := conversation.ProviderID.String()
		providerID = &id
	}

	return api.Conversation{
		Id:         conversation.ID.String(),
		PatientId:  conversation.PatientID.String(),
		ProviderId: providerID,
		Topic:      conversation.Topic,
		Status:     string(conversation.Status),
		CreatedAt:  conversation.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
