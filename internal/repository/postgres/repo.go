package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/telemed-chat-service/internal/config"
	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Хэндлер отдаёт его клиенту как конфликт данных.
var ErrConversationNotFound = errors.New("conversation not found")

type txKey struct{}

type queryExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, transaction)); err != nil {
		_ = transaction.Rollback()
		return err
	}

	return transaction.Commit()
}

func (r *Repository) Chk(ctx context.Context) queryExecutor {
	if transaction, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return transaction
	}
	return r.connection
}

func (r *Repository) GetConversation(ctx context.Context, conversationID string) (*model.Conversation, error) {
	query, args, err := sq.Select(
		"id",
		"patient_id",
		"provider_id",
		"topic",
		"status",
		"created_at",
	).
		From("conversations").
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) GetConversationMessages(ctx context.Context, conversationID string, page, limit int64) (*model.MessageList, error) {
	if limit <= 0 {
		limit = 50 // дефолтный лимит
	}
	if page <= 0 {
		page = 1
	}

	query, args, err := sq.Select(
		"id",
		"conversation_id",
		"sender_role",
		"content",
		"is_attachment",
		"created_at",
	).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return &messages, nil
}

func (r *Repository) CountConversationMessages(ctx context.Context, conversationID string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var total int64
	err = r.Chk(ctx).GetContext(ctx, &total, query, args...)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_role", "content", "is_attachment", "created_at").
		Values(message.ID, message.ConversationID, message.SenderRole, message.Content, message.IsAttachment, message.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) CreateConversation(ctx context.Context, conversation *model.Conversation) (string, error) {
	query, args, err := sq.Insert("conversations").
		Columns("patient_id", "provider_id", "topic", "status").
		Values(conversation.PatientID, conversation.ProviderID, conversation.Topic, conversation.Status).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID string
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if err != nil {
		return "", err
	}

	return conversationID, nil
}

// Постоянный диалог пациента по теме создаётся один раз, первым приёмом.
func (r *Repository) GetPatientConversationByTopic(ctx context.Context, patientID, topic string) (*model.Conversation, error) {
	query, args, err := sq.Select(
		"id",
		"patient_id",
		"provider_id",
		"topic",
		"status",
		"created_at",
	).
		From("conversations").
		Where(sq.Eq{
			"patient_id": patientID,
			"topic":      topic,
		}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) UpdateConversationStatus(ctx context.Context, conversationID string, status model.ConversationStatus) (*model.Conversation, error) {
	query, args, err := sq.Update("conversations").
		Set("status", status).
		Where(sq.Eq{"id": conversationID}).
		Suffix("RETURNING id, patient_id, provider_id, topic, status, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversation model.Conversation
	err = r.Chk(ctx).GetContext(ctx, &conversation, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

func (r *Repository) ReopenConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("status", model.UnresolvedStatus).
		Where(sq.Eq{
			"id":     conversationID,
			"status": model.ResolvedStatus,
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) MarkConversationRead(ctx context.Context, conversationID string, role model.Role) error {
	query, args, err := sq.Insert("conversation_reads").
		Columns("conversation_id", "role", "last_read_at").
		Values(conversationID, role, sq.Expr("now()")).
		Suffix("ON CONFLICT (conversation_id, role) DO UPDATE SET last_read_at = now()").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) IsConversationParticipant(ctx context.Context, conversationID, userUUID string, role model.Role) (bool, error) {
	builder := sq.Select("COUNT(*) > 0").
		From("conversations").
		Where(sq.Eq{"id": conversationID})

	switch role {
	case model.PatientRole:
		builder = builder.Where(sq.Eq{"patient_id": userUUID})
	case model.ProviderRole:
		// Провайдер видит назначенные ему и ещё не разобранные диалоги.
		builder = builder.Where(sq.Or{
			sq.Eq{"provider_id": userUUID},
			sq.Eq{"provider_id": nil},
		})
	case model.AdminRole:
	default:
		return false, fmt.Errorf("role '%s' has no conversation access", role)
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isParticipant bool
	err = r.Chk(ctx).GetContext(ctx, &isParticipant, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check conversation access: %v", err)
	}

	return isParticipant, nil
}

func (r *Repository) GetConversationSummary(ctx context.Context, conversationID string, role model.Role) (*model.ConversationSummary, error) {
	query, args, err := r.summaryBuilder(role).
		Where(sq.Eq{"c.id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var summary model.ConversationSummary
	err = r.Chk(ctx).GetContext(ctx, &summary, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation summary: %v", err)
	}

	return &summary, nil
}

func (r *Repository) GetConversationSummaries(ctx context.Context, userUUID string, role model.Role) (*model.ConversationSummaryList, error) {
	builder := r.summaryBuilder(role)

	switch role {
	case model.PatientRole:
		builder = builder.Where(sq.Eq{"c.patient_id": userUUID})
	case model.ProviderRole:
		builder = builder.Where(sq.Or{
			sq.Eq{"c.provider_id": userUUID},
			sq.Eq{"c.provider_id": nil},
		})
	case model.AdminRole:
	default:
		return nil, fmt.Errorf("role '%s' has no conversation access", role)
	}

	query, args, err := builder.
		OrderBy("c.created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var summaries model.ConversationSummaryList
	err = r.Chk(ctx).SelectContext(ctx, &summaries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation summaries: %v", err)
	}

	return &summaries, nil
}

func (r *Repository) summaryBuilder(role model.Role) sq.SelectBuilder {
	return sq.Select(
		"c.id as conversation_id",
		"c.status",
		"c.provider_id IS NOT NULL as provider_assigned",
		"("+func() string {
			query, _, _ := sq.Select("content").
				From("messages m").
				Where("m.conversation_id = c.id").
				Where(sq.Eq{"m.deleted_at": nil}).
				OrderBy("m.created_at DESC").
				Limit(1).ToSql()
			return query
		}()+") as last_message_preview",
		"("+func() string {
			query, _, _ := sq.Select("created_at").
				From("messages m").
				Where("m.conversation_id = c.id").
				Where(sq.Eq{"m.deleted_at": nil}).
				OrderBy("m.created_at DESC").
				Limit(1).ToSql()
			return query
		}()+") as last_message_at",
		fmt.Sprintf("(SELECT COUNT(*) FROM messages m WHERE m.conversation_id = c.id AND m.deleted_at IS NULL"+
			" AND m.sender_role != '%s'"+
			" AND m.created_at > COALESCE((SELECT last_read_at FROM conversation_reads r"+
			" WHERE r.conversation_id = c.id AND r.role = '%s'), 'epoch'::timestamptz)) as unread_count", role, role),
	).
		From("conversations c")
}
