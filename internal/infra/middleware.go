package infra

import (
	"context"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/telemed-chat-service/internal/config"
	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Идентичность зрителя проставляет гейтвей.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get("uuid")
		if userUUID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := model.Role(r.Header.Get("role"))
		switch role {
		case model.PatientRole, model.ProviderRole, model.AdminRole:
		default:
			http.Error(w, "unknown role", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		ctx = context.WithValue(ctx, config.KeyRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
