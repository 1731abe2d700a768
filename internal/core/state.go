package core

import (
	"sync"

	"github.com/Rorical/NovaQuest/internal/models"
)

// SessionState owns the query lifecycle: idle -> loading -> success|error.
// Every request gets a sequence number at submission and only the latest
// request may write its outcome.
type SessionState struct {
	mu        sync.RWMutex
	query     models.Query
	loading   bool
	lastError error
	result    *models.Result
	seq       uint64
	notices   []models.Notice
}

func NewSessionState() *SessionState {
	return &SessionState{
		notices: make([]models.Notice, 0),
	}
}

// Begin marks a new submission and returns its sequence number. The previous
// error is cleared; the previous result stays until replaced.
func (s *SessionState) Begin(q models.Query) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.query = q
	s.loading = true
	s.lastError = nil
	return s.seq
}

// Complete applies the outcome of request seq. Outcomes of superseded
// requests are dropped and Complete returns false.
func (s *SessionState) Complete(seq uint64, result *models.Result, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}
	s.loading = false
	if err != nil {
		s.lastError = err
		return true
	}
	s.result = result
	s.lastError = nil
	return true
}

func (s *SessionState) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{
		Query:     s.query,
		Loading:   s.loading,
		LastError: s.lastError,
		Result:    s.result,
		Seq:       s.seq,
	}
}

func (s *SessionState) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionState) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *SessionState) Result() *models.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// AddNotice appends a program notice (banner, status, key help)
func (s *SessionState) AddNotice(content string, typ models.NoticeType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, models.Notice{Content: content, Type: typ})
}

func (s *SessionState) Notices() []models.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}
