package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// Well-known session keys. The bag accepts arbitrary keys; these are the
// ones the handlers read and write.
const (
	KeyIsLoggedIn          = "isLoggedIn"
	KeyUserID              = "userId"
	KeyEmail               = "email"
	KeyGameProfileID       = "gameProfileId"
	KeyGameProfileUsername = "gameProfileUsername"
	KeyGameProfilePlatform = "gameProfilePlatform"
)

// Session is a server-side bag of per-browser state referenced by an opaque
// token carried in a cookie. Values are protected by their own lock because
// two requests from the same browser (two tabs) can touch one session
// concurrently.
type Session struct {
	token string

	mu     sync.RWMutex
	values map[string]any
}

// Token returns the opaque identifier stored in the session cookie.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Session) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// IsLoggedIn reports whether a successful login has marked this session.
func (s *Session) IsLoggedIn() bool {
	v, ok := s.Get(KeyIsLoggedIn)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// UserID returns the authenticated user's id, or 0 when anonymous.
func (s *Session) UserID() int64 {
	v, ok := s.Get(KeyUserID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// GameProfileID returns the session-cached profile id from the last search,
// or 0 when none is cached.
func (s *Session) GameProfileID() int64 {
	v, ok := s.Get(KeyGameProfileID)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

// GetString avoids type assertions at call sites for the string-valued
// keys, returning "" when the key is absent or not a string.
func (s *Session) GetString(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Manager owns the registry of live sessions. The in-memory implementation
// is the system of record for authentication state only; losing it on
// restart logs everyone out and nothing more.
type Manager interface {
	// Create allocates a session with an unpredictable token and empty state.
	Create() (*Session, error)
	// Get returns the session for a token, or nil when unknown.
	Get(token string) *Session
	// Destroy removes a session permanently. Unknown tokens are a no-op.
	Destroy(token string)
}

// MemoryManager is the in-process Manager backed by a mutex-guarded map.
type MemoryManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{sessions: make(map[string]*Session)}
}

func (m *MemoryManager) Create() (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	sess := &Session{
		token:  token,
		values: make(map[string]any),
	}
	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()
	return sess, nil
}

func (m *MemoryManager) Get(token string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[token]
}

func (m *MemoryManager) Destroy(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Len reports the number of live sessions.
func (m *MemoryManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
