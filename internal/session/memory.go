package session

import "sync"

// Memory is an in-process Store.
type Memory struct {
	mu sync.RWMutex
	s  Session
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Set(s Session) error {
	m.mu.Lock()
	m.s = s
	m.mu.Unlock()
	return nil
}

func (m *Memory) get() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s
}

func (m *Memory) Token() string  { return m.get().AccessToken }
func (m *Memory) UserID() string { return m.get().UserID }
func (m *Memory) Role() Role     { return m.get().Role }
func (m *Memory) Email() string  { return m.get().Email }

func (m *Memory) Clear() error {
	return m.Set(Session{})
}

// IsAuthenticated requires the token and user id only.
func (m *Memory) IsAuthenticated() bool {
	s := m.get()
	return s.AccessToken != "" && s.UserID != ""
}
