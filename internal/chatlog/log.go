package chatlog

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/s21platform/telemed-chat-service/internal/model"
)

// Порядок: (created_at, порядок вставки), повторный id игнорируется.
type Log struct {
	mu      sync.Mutex
	entries []entry
	seen    map[uuid.UUID]struct{}
	seq     uint64
}

type entry struct {
	msg model.Message
	seq uint64
}

func New() *Log {
	return &Log{
		seen: make(map[uuid.UUID]struct{}),
	}
}

func (l *Log) Append(messages model.MessageList) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, msg := range messages {
		l.insert(msg)
	}
}

func (l *Log) Prepend(older model.MessageList) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, msg := range older {
		l.insert(msg)
	}
}

func (l *Log) Replace(messages model.MessageList) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
	l.seen = make(map[uuid.UUID]struct{})

	for _, msg := range messages {
		l.insert(msg)
	}
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	l.seen = make(map[uuid.UUID]struct{})
}

func (l *Log) Contains(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.seen[id]
	return ok
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func (l *Log) Snapshot() model.MessageList {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(model.MessageList, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.msg
	}
	return out
}

func (l *Log) insert(msg model.Message) {
	if _, ok := l.seen[msg.ID]; ok {
		return
	}

	l.seq++
	e := entry{msg: msg, seq: l.seq}

	idx := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].msg.CreatedAt.After(msg.CreatedAt)
	})

	l.entries = append(l.entries, entry{})
	copy(l.entries[idx+1:], l.entries[idx:])
	l.entries[idx] = e
	l.seen[msg.ID] = struct{}{}
}
