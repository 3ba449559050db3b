package service

import (
	"testing"

	"sat_prep_backend/internal/timer"
	"sat_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_StartReturnsRunningSnapshot(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	state, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)
	assert.Equal(t, timer.Running, state.State)
	assert.Equal(t, 0, state.Elapsed)
	assert.Equal(t, "sec-1", state.SectionID)
}

func TestAttempt_RestartInsideWindowIsNoOp(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	first, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)

	// An immediate second start (a double-click) must return the same
	// running attempt, not a fresh one.
	second, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)
	assert.Equal(t, first.State, second.State)
	assert.Len(t, svc.attempts, 1)

	_, err = svc.Finish(1, "sec-1")
	require.NoError(t, err)
}

func TestAttempt_PauseAndResume(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	_, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)

	state, err := svc.Pause(1, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, timer.Paused, state.State)

	state, err = svc.Resume(1, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, timer.Running, state.State)

	_, err = svc.Finish(1, "sec-1")
	require.NoError(t, err)
}

func TestAttempt_FinishPersistsSession(t *testing.T) {
	recorder := &fakeSessionRecorder{}
	svc := NewAttemptService(recorder)

	_, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)

	state, err := svc.Finish(1, "sec-1")
	require.NoError(t, err)
	assert.Equal(t, timer.Stopped, state.State)

	require.Len(t, recorder.sessions, 1)
	session := recorder.sessions[0]
	assert.Equal(t, uint(1), session.UserID)
	assert.Equal(t, "sec-1", session.SectionID)
	assert.Equal(t, state.Elapsed, session.Duration)
	assert.False(t, session.EndTime.Before(session.StartTime))
}

func TestAttempt_FinishWithoutStart(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	_, err := svc.Finish(1, "sec-1")
	assert.ErrorIs(t, err, util.ErrNoActiveAttempt)
}

func TestAttempt_TransitionsNeedActiveAttempt(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	_, err := svc.Pause(1, "sec-1")
	assert.ErrorIs(t, err, util.ErrNoActiveAttempt)
	_, err = svc.Resume(1, "sec-1")
	assert.ErrorIs(t, err, util.ErrNoActiveAttempt)
}

func TestAttempt_UsersAndSectionsAreIndependent(t *testing.T) {
	svc := NewAttemptService(&fakeSessionRecorder{})

	_, err := svc.Start(1, "sec-1", 0)
	require.NoError(t, err)
	_, err = svc.Start(2, "sec-1", 0)
	require.NoError(t, err)
	_, err = svc.Start(1, "sec-2", 0)
	require.NoError(t, err)

	assert.Len(t, svc.attempts, 3)

	_, err = svc.Finish(1, "sec-1")
	require.NoError(t, err)
	assert.Len(t, svc.attempts, 2)

	_, err = svc.Finish(2, "sec-1")
	require.NoError(t, err)
	_, err = svc.Finish(1, "sec-2")
	require.NoError(t, err)
}
