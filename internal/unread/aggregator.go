package unread

import (
	"sync"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Счётчики по (роль, диалог); SetAbsolute перекрывает локальные дельты.
type Aggregator struct {
	mu     sync.Mutex
	counts map[model.Role]map[uuid.UUID]int64
}

func New() *Aggregator {
	return &Aggregator{
		counts: make(map[model.Role]map[uuid.UUID]int64),
	}
}

func (a *Aggregator) OnMessageArrived(sender model.Role, conversationID uuid.UUID, participants []model.Role) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, role := range participants {
		if role == sender {
			continue
		}
		a.bucket(role)[conversationID]++
	}
}

func (a *Aggregator) OnRead(role model.Role, conversationID uuid.UUID, amount int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	bucket := a.bucket(role)
	next := bucket[conversationID] - amount
	if next < 0 {
		next = 0
	}
	bucket[conversationID] = next
}

func (a *Aggregator) SetAbsolute(role model.Role, conversationID uuid.UUID, count int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if count < 0 {
		count = 0
	}
	a.bucket(role)[conversationID] = count
}

func (a *Aggregator) Count(role model.Role, conversationID uuid.UUID) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.bucket(role)[conversationID]
}

func (a *Aggregator) Total(role model.Role) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total int64
	for _, count := range a.bucket(role) {
		total += count
	}
	return total
}

func (a *Aggregator) bucket(role model.Role) map[uuid.UUID]int64 {
	bucket, ok := a.counts[role]
	if !ok {
		bucket = make(map[uuid.UUID]int64)
		a.counts[role] = bucket
	}
	return bucket
}
