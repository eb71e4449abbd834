package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found or expired")

const DefaultTimeout = 60 * time.Minute

// Store is a thread-safe in-memory registry of chat sessions.
//
// Expiry is lazy: a lookup that encounters an expired session evicts
// exactly that one entry. SweepExpired removes all expired entries in
// bulk; a caller-owned timer is expected to invoke it periodically.
// Sessions are in-memory only; scaling beyond a single process would
// require an external store with equivalent atomicity on
// create/expire/append.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	timeout  time.Duration

	// now is swappable in tests for deterministic expiry.
	now func() time.Time
}

// NewStore creates a session store. Sessions expire after timeout of
// inactivity; a non-positive timeout falls back to DefaultTimeout.
func NewStore(timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Store{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		now:      time.Now,
	}
}

// Create allocates a new session with a fresh random identifier.
func (s *Store) Create(metadata map[string]string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(metadata)
}

func (s *Store) createLocked(metadata map[string]string) Session {
	if metadata == nil {
		metadata = make(map[string]string)
	}
	now := s.now()
	sess := &Session{
		ID:           uuid.NewString(),
		CreatedAt:    now,
		LastActivity: now,
		Messages:     []Message{},
		Metadata:     metadata,
	}
	s.sessions[sess.ID] = sess
	return sess.snapshot()
}

// Get returns a snapshot of the session, or ErrNotFound if it is absent
// or expired. An expired entry is evicted on the spot; other expired
// entries are left for SweepExpired.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return Session{}, err
	}
	return sess.snapshot(), nil
}

// getLocked is the shared lookup-with-lazy-eviction. Caller must hold mu.
func (s *Store) getLocked(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Store) expired(sess *Session) bool {
	return s.now().After(sess.LastActivity.Add(s.timeout))
}

// GetOrCreate returns the live session for id, or a brand new session
// (with a fresh identifier) when id is empty, unknown, or expired.
// An expired identifier is never resurrected.
func (s *Store) GetOrCreate(id string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, err := s.getLocked(id); err == nil {
			return sess.snapshot()
		}
	}
	return s.createLocked(nil)
}

// Append adds a message to the session and bumps LastActivity.
// The append and the activity update are atomic with respect to
// concurrent turns against the same session.
func (s *Store) Append(id, role, content string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return Message{}, err
	}

	msg := Message{
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
	sess.Messages = append(sess.Messages, msg)
	sess.LastActivity = msg.Timestamp
	return msg, nil
}

// History returns up to limit most recent messages in append order.
// limit <= 0 returns the full history.
func (s *Store) History(id string, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}

	messages := sess.Messages
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	out := make([]Message, len(messages))
	copy(out, messages)
	return out, nil
}

// Info returns the session summary without messages.
func (s *Store) Info(id string) (*Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	return sess.info(), nil
}

// Clear empties the message history of a live session, keeping the
// session (and its CreatedAt) intact. Clearing counts as activity.
func (s *Store) Clear(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(id)
	if err != nil {
		return false
	}
	sess.Messages = []Message{}
	sess.LastActivity = s.now()
	return true
}

// Delete removes a session unconditionally, expired or not.
// Returns whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// SweepExpired removes every expired session and returns how many were
// removed. Intended for periodic invocation by a caller-owned timer.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// ActiveCount returns the registry size. Entries that are expired but
// not yet swept are included, so this is an upper bound on truly
// active sessions.
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
