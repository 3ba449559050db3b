package service

import (
	"testing"
	"time"

	"sat_prep_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeUser(id uint) *model.User {
	u := &model.User{Name: "Student", Email: "s@example.com", Role: model.Student}
	u.ID = id
	return u
}

func TestRefresh_LoadsOnFirstCall(t *testing.T) {
	loader := &fakeUserLoader{users: map[uint]*model.User{1: activeUser(1)}}
	sc := NewSessionContext(1, 30*time.Second, loader)

	user, err := sc.Refresh(time.Now())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, 1, loader.calls)
}

func TestRefresh_ThrottledInsideInterval(t *testing.T) {
	loader := &fakeUserLoader{users: map[uint]*model.User{1: activeUser(1)}}
	sc := NewSessionContext(1, 30*time.Second, loader)

	now := time.Now()
	_, err := sc.Refresh(now)
	require.NoError(t, err)

	// A second call inside the window returns the cached user without
	// touching the store.
	_, err = sc.Refresh(now.Add(10 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)

	// Past the window it reloads.
	_, err = sc.Refresh(now.Add(31 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls)
}

func TestRefresh_DisabledUserReturnsNil(t *testing.T) {
	disabled := activeUser(1)
	disabled.Disabled = true
	loader := &fakeUserLoader{users: map[uint]*model.User{1: disabled}}
	sc := NewSessionContext(1, 30*time.Second, loader)

	user, err := sc.Refresh(time.Now())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRefresh_DisableNoticedAfterWindow(t *testing.T) {
	loader := &fakeUserLoader{users: map[uint]*model.User{1: activeUser(1)}}
	sc := NewSessionContext(1, 30*time.Second, loader)

	now := time.Now()
	user, err := sc.Refresh(now)
	require.NoError(t, err)
	require.NotNil(t, user)

	loader.users[1].Disabled = true

	// Still cached inside the window.
	user, err = sc.Refresh(now.Add(5 * time.Second))
	require.NoError(t, err)
	assert.NotNil(t, user)

	// Past the window the disable takes effect.
	user, err = sc.Refresh(now.Add(31 * time.Second))
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRefresh_MissingUserErrors(t *testing.T) {
	loader := &fakeUserLoader{users: map[uint]*model.User{}}
	sc := NewSessionContext(7, 30*time.Second, loader)

	_, err := sc.Refresh(time.Now())
	assert.Error(t, err)
}

func TestSessionContextService_ReusesContextPerUser(t *testing.T) {
	loader := &fakeUserLoader{users: map[uint]*model.User{1: activeUser(1)}}
	svc := NewSessionContextService(30*time.Second, loader)

	first := svc.For(1)
	second := svc.For(1)
	assert.Same(t, first, second)
	assert.NotSame(t, first, svc.For(2))

	// The throttle window spans requests because the context is shared.
	now := time.Now()
	_, err := svc.For(1).Refresh(now)
	require.NoError(t, err)
	_, err = svc.For(1).Refresh(now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)
}
