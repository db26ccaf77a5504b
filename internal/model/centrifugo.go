package model

import "github.com/golang-jwt/jwt/v5"

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string  `json:"channel"`
	Data    Message `json:"data"`
}

type RealtimeEvent struct {
	Channel string
	Message Message
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	// Centrifugo специфичные поля
	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	// Кастомные поля для безопасности
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Каналы ролей. Провайдер слушает и staff, и свой dashboard-канал.
const (
	StaffChannel = "staff"
)

func PatientChannel(patientID string) string {
	return "patient:" + patientID
}

func ProviderChannel(providerID string) string {
	return "provider:" + providerID
}
