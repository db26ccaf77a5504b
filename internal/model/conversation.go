package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	PatientRole  Role = "patient"
	ProviderRole Role = "provider"
	AdminRole    Role = "admin"
	SystemRole   Role = "system"
)

type ConversationStatus string

const (
	UnreadStatus     ConversationStatus = "unread"
	UnresolvedStatus ConversationStatus = "unresolved"
	ResolvedStatus   ConversationStatus = "resolved"
)

func (s ConversationStatus) Valid() bool {
	switch s {
	case UnreadStatus, UnresolvedStatus, ResolvedStatus:
		return true
	}
	return false
}

type Conversation struct {
	ID         uuid.UUID          `db:"id" json:"id"`
	PatientID  uuid.UUID          `db:"patient_id" json:"patient_id"`
	ProviderID *uuid.UUID         `db:"provider_id" json:"provider_id,omitempty"`
	Topic      string             `db:"topic" json:"topic"`
	Status     ConversationStatus `db:"status" json:"status"`
	CreatedAt  time.Time          `db:"created_at" json:"created_at"`
}

// ParticipantRoles: пациент и стафф всегда участники, провайдер только после назначения.
func (c *Conversation) ParticipantRoles() []Role {
	roles := []Role{PatientRole, AdminRole}
	if c.ProviderID != nil {
		roles = append(roles, ProviderRole)
	}
	return roles
}

type ConversationSummaryList []ConversationSummary

type ConversationSummary struct {
	ConversationID     uuid.UUID          `db:"conversation_id" json:"conversation_id"`
	LastMessagePreview *string            `db:"last_message_preview" json:"last_message_preview,omitempty"`
	LastMessageAt      *time.Time         `db:"last_message_at" json:"last_message_at,omitempty"`
	Status             ConversationStatus `db:"status" json:"status"`
	UnreadCount        int64              `db:"unread_count" json:"unread_count"`
	ProviderAssigned   bool               `db:"provider_assigned" json:"provider_assigned"`
}
