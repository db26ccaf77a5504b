package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID `db:"id" json:"id"`
	ConversationID uuid.UUID `db:"conversation_id" json:"conversation_id"`
	SenderRole     Role      `db:"sender_role" json:"sender_role"`
	Content        string    `db:"content" json:"content"`
	IsAttachment   bool      `db:"is_attachment" json:"is_attachment"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type MessagePage struct {
	Messages MessageList          `json:"messages"`
	Meta     PageMeta             `json:"meta"`
	Summary  *ConversationSummary `json:"conversation_summary,omitempty"`
}

type PageMeta struct {
	Page        int64 `json:"page"`
	HasNextPage bool  `json:"has_next_page"`
	Total       int64 `json:"total"`
}
