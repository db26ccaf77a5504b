package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Диалог исчез или уже изменён; вызывающий не ретраит.
var ErrConflict = errors.New("conversation state conflict")

type Client struct {
	baseURL    string
	userUUID   string
	role       model.Role
	httpClient *http.Client
}

func New(baseURL, userUUID string, role model.Role, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		userUUID:   userUUID,
		role:       role,
		httpClient: httpClient,
	}
}

func (c *Client) GetConversationMessages(ctx context.Context, conversationID uuid.UUID, page, limit int64) (*model.MessagePage, error) {
	url := fmt.Sprintf("%s/api/conversations/%s/messages?page=%s&limit=%s",
		c.baseURL, conversationID, strconv.FormatInt(page, 10), strconv.FormatInt(limit, 10))

	var out model.MessagePage
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation messages: %w", err)
	}

	return &out, nil
}

func (c *Client) GetConversationSummaries(ctx context.Context) (model.ConversationSummaryList, error) {
	url := c.baseURL + "/api/conversations"

	var out struct {
		Conversations model.ConversationSummaryList `json:"conversations"`
	}
	if err := c.do(ctx, http.MethodGet, url, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch conversation summaries: %w", err)
	}

	return out.Conversations, nil
}

func (c *Client) UpdateConversationStatus(ctx context.Context, conversationID uuid.UUID, status model.ConversationStatus) (*model.Conversation, error) {
	url := fmt.Sprintf("%s/api/conversations/%s", c.baseURL, conversationID)

	body := map[string]model.ConversationStatus{"status": status}

	var out struct {
		Conversation model.Conversation `json:"conversation"`
	}
	if err := c.do(ctx, http.MethodPatch, url, body, &out); err != nil {
		return nil, fmt.Errorf("failed to update conversation status: %w", err)
	}

	return &out.Conversation, nil
}

func (c *Client) MarkConversationRead(ctx context.Context, conversationID uuid.UUID) error {
	url := fmt.Sprintf("%s/api/conversations/%s/read", c.baseURL, conversationID)

	if err := c.do(ctx, http.MethodPost, url, nil, nil); err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("uuid", c.userUUID)
	req.Header.Set("role", string(c.role))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	switch {
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusNotFound:
		return ErrConflict
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
