package service

import (
	"sync"
	"time"

	"sat_prep_backend/internal/model"
)

// UserLoader fetches the current user record.
// *repository.UserRepository satisfies it.
type UserLoader interface {
	FindByID(id uint) (*model.User, error)
}

// SessionContext holds one user's session state with an explicit,
// throttled refresh contract. Handlers receive it per request instead
// of reading ambient auth state; Refresh takes the current time and a
// fixed minimum interval decides whether the backing store is hit
// again, so repeated calls inside the window are cheap.
type SessionContext struct {
	mu sync.Mutex

	userID      uint
	user        *model.User
	fetchedAt   time.Time
	minInterval time.Duration
	loader      UserLoader
}

func NewSessionContext(userID uint, minInterval time.Duration, loader UserLoader) *SessionContext {
	return &SessionContext{
		userID:      userID,
		minInterval: minInterval,
		loader:      loader,
	}
}

// Refresh returns the session's user, reloading from the store only
// when the minimum refresh interval has elapsed since the last load.
// Returns nil when the user no longer exists or is disabled.
func (s *SessionContext) Refresh(now time.Time) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil && now.Sub(s.fetchedAt) < s.minInterval {
		return s.user, nil
	}

	user, err := s.loader.FindByID(s.userID)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		s.user = nil
		return nil, nil
	}

	s.user = user
	s.fetchedAt = now
	return s.user, nil
}

// UserID returns the id this context is bound to.
func (s *SessionContext) UserID() uint {
	return s.userID
}

// SessionContextService caches one SessionContext per user so the
// throttle window spans requests.
type SessionContextService struct {
	mu          sync.Mutex
	contexts    map[uint]*SessionContext
	minInterval time.Duration
	loader      UserLoader
}

func NewSessionContextService(minInterval time.Duration, loader UserLoader) *SessionContextService {
	return &SessionContextService{
		contexts:    make(map[uint]*SessionContext),
		minInterval: minInterval,
		loader:      loader,
	}
}

// For returns the session context for a user, creating it on first use.
func (s *SessionContextService) For(userID uint) *SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sc, ok := s.contexts[userID]; ok {
		return sc
	}
	sc := NewSessionContext(userID, s.minInterval, s.loader)
	s.contexts[userID] = sc
	return sc
}
