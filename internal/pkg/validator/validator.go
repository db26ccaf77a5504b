package validator

import (
	"fmt"
	"net/url"
	"strings"

	api "github.com/s21platform/telemed-chat-service/internal/generated"
	"github.com/s21platform/telemed-chat-service/internal/model"
)

const maxContentLength = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if req.IsAttachment {
		// Вложение несёт только URL, выданный файловым сервисом.
		parsed, err := url.Parse(req.Content)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("attachment content must be a valid URL")
		}
		return nil
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateUpdateStatus(req *api.UpdateConversationStatusRequest) error {
	if !model.ConversationStatus(req.Status).Valid() {
		return fmt.Errorf("status '%s' is not supported", req.Status)
	}

	return nil
}
