package lifecycle

import (
	"sync"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

// unread -> unresolved -> resolved; любое входящее сообщение возвращает
// resolved в unresolved.
type Machine struct {
	mu     sync.Mutex
	status model.ConversationStatus
}

func New() *Machine {
	return &Machine{
		status: model.UnreadStatus,
	}
}

func (m *Machine) Seed(status model.ConversationStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = status
}

func (m *Machine) Status() model.ConversationStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.status
}

func (m *Machine) OnMessage() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == model.ResolvedStatus {
		m.status = model.UnresolvedStatus
		return true
	}
	return false
}

func (m *Machine) OnRead() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == model.UnreadStatus {
		m.status = model.UnresolvedStatus
		return true
	}
	return false
}

func (m *Machine) Set(status model.ConversationStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.status = status
}
