package service

import (
	"fmt"
	"sync"
	"time"

	"sat_prep_backend/internal/model"
	"sat_prep_backend/internal/timer"
	"sat_prep_backend/internal/util"
	"sat_prep_backend/pkg/logger"

	"go.uber.org/zap"
)

// SessionRecorder persists finished attempt telemetry.
// *repository.SectionSessionRepository satisfies it.
type SessionRecorder interface {
	Create(s *model.SectionSession) error
}

// minStartInterval guards against the same start action re-firing
// within a short window (an impatient double-click).
const minStartInterval = 2 * time.Second

type attempt struct {
	ctrl      *timer.Controller
	startedAt time.Time
}

// AttemptService tracks the active timed attempt per (user, section).
// Elapsed time lives in memory only; what survives is the SectionSession
// row written when the attempt finishes. Losing in-flight state on a
// restart is accepted, matching the attempt's observational role.
type AttemptService struct {
	mu       sync.Mutex
	attempts map[string]*attempt

	Sessions SessionRecorder
}

func NewAttemptService(sessions SessionRecorder) *AttemptService {
	return &AttemptService{
		attempts: make(map[string]*attempt),
		Sessions: sessions,
	}
}

func attemptKey(userID uint, sectionID string) string {
	return fmt.Sprintf("%d:%s", userID, sectionID)
}

// AttemptState is the timer snapshot returned to the client.
type AttemptState struct {
	SectionID string      `json:"sectionId"`
	State     timer.State `json:"state"`
	Elapsed   int         `json:"elapsed"`
}

// Start begins a timed attempt. duration is an optional ceiling in
// seconds; when reached, the attempt stops itself and the session row is
// written as if finished. A re-start within the debounce window returns
// the running attempt untouched.
func (s *AttemptService) Start(userID uint, sectionID string, duration int) (*AttemptState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := attemptKey(userID, sectionID)
	if a, ok := s.attempts[key]; ok {
		if time.Since(a.startedAt) < minStartInterval {
			return snapshot(sectionID, a.ctrl), nil
		}
		// Switching back to a section resets its attempt.
		a.ctrl.Reset()
		delete(s.attempts, key)
	}

	a := &attempt{startedAt: time.Now()}
	a.ctrl = timer.New(duration, func() {
		s.expire(userID, sectionID)
	})
	s.attempts[key] = a
	a.ctrl.Start()

	return snapshot(sectionID, a.ctrl), nil
}

func (s *AttemptService) Pause(userID uint, sectionID string) (*AttemptState, error) {
	a, err := s.lookup(userID, sectionID)
	if err != nil {
		return nil, err
	}
	a.ctrl.Pause()
	return snapshot(sectionID, a.ctrl), nil
}

func (s *AttemptService) Resume(userID uint, sectionID string) (*AttemptState, error) {
	a, err := s.lookup(userID, sectionID)
	if err != nil {
		return nil, err
	}
	a.ctrl.Resume()
	return snapshot(sectionID, a.ctrl), nil
}

// Finish stops the attempt and writes its SectionSession row.
func (s *AttemptService) Finish(userID uint, sectionID string) (*AttemptState, error) {
	s.mu.Lock()
	a, ok := s.attempts[attemptKey(userID, sectionID)]
	if ok {
		delete(s.attempts, attemptKey(userID, sectionID))
	}
	s.mu.Unlock()

	if !ok {
		return nil, util.ErrNoActiveAttempt
	}

	a.ctrl.Stop()
	state := snapshot(sectionID, a.ctrl)

	session := &model.SectionSession{
		UserID:    userID,
		SectionID: sectionID,
		StartTime: a.startedAt,
		EndTime:   time.Now(),
		Duration:  state.Elapsed,
	}
	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}

	return state, nil
}

// expire runs when an attempt hits its duration ceiling. The controller
// has already stopped itself; we only persist the session row.
func (s *AttemptService) expire(userID uint, sectionID string) {
	s.mu.Lock()
	a, ok := s.attempts[attemptKey(userID, sectionID)]
	if ok {
		delete(s.attempts, attemptKey(userID, sectionID))
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	session := &model.SectionSession{
		UserID:    userID,
		SectionID: sectionID,
		StartTime: a.startedAt,
		EndTime:   time.Now(),
		Duration:  a.ctrl.Elapsed(),
	}
	if err := s.Sessions.Create(session); err != nil {
		logger.Log.Error("failed to record expired attempt",
			zap.Uint("userId", userID),
			zap.String("sectionId", sectionID),
			zap.Error(err))
	}
}

func (s *AttemptService) lookup(userID uint, sectionID string) (*attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptKey(userID, sectionID)]
	if !ok {
		return nil, util.ErrNoActiveAttempt
	}
	return a, nil
}

func snapshot(sectionID string, c *timer.Controller) *AttemptState {
	return &AttemptState{
		SectionID: sectionID,
		State:     c.State(),
		Elapsed:   c.Elapsed(),
	}
}
