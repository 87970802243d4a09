package infrastructure

import (
	"sync"

	"github.com/google/uuid"

	"project_cloudi/internal/entities"
)

// HistoryCap bounds the conversation turns a session retains; oldest turns
// are dropped first.
const HistoryCap = 8

// Session holds one web visitor's running conversation and chosen mood. Only
// the request currently serving the session touches it, but the mutex keeps
// overlapping tabs safe.
type Session struct {
	ID      string
	mood    entities.Mood
	history []entities.ConversationTurn
	mu      sync.Mutex
}

// Mood returns the stored mood, empty when never set.
func (s *Session) Mood() entities.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

// SetMood persists the mood for reuse across turns.
func (s *Session) SetMood(mood entities.Mood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mood = mood
}

// AppendTurn records a question/answer pair, evicting the oldest turn once
// the cap is exceeded.
func (s *Session) AppendTurn(turn entities.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, turn)
	if len(s.history) > HistoryCap {
		s.history = s.history[len(s.history)-HistoryCap:]
	}
}

// History returns a copy of the retained turns, oldest first.
func (s *Session) History() []entities.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory drops all retained turns but keeps the mood.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// SessionManager owns all live web sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Get returns the session for id, or nil when unknown.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Create mints a new session with a fresh ID.
func (sm *SessionManager) Create() *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	session := &Session{ID: uuid.NewString()}
	sm.sessions[session.ID] = session
	return session
}
