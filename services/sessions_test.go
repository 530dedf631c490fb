package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmicclicker/game"
)

func newTestManager(t *testing.T) (*SessionManager, *LocalStore) {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	manager := NewSessionManager(local, nil, newFakeClock())
	t.Cleanup(manager.StopAll)
	return manager, local
}

func TestForGuestReusesSession(t *testing.T) {
	manager, _ := newTestManager(t)

	first := manager.ForGuest("abc")
	second := manager.ForGuest("abc")
	other := manager.ForGuest("def")

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestForUserLoadsLocalFallback(t *testing.T) {
	manager, local := newTestManager(t)

	saved := game.NewState(newFakeClock().Now())
	saved.Stardust = 900
	require.NoError(t, local.Save("7", &saved))

	engine := manager.ForUser(7)
	assert.Equal(t, 900.0, engine.Snapshot().Stardust)
	assert.Same(t, engine, manager.ForUser(7))
}

func TestGuestAndUserScopesAreDistinct(t *testing.T) {
	manager, _ := newTestManager(t)

	guest := manager.ForGuest("7")
	user := manager.ForUser(7)
	require.NotSame(t, guest, user)

	guest.Do(game.Click{})
	assert.Equal(t, int64(0), user.Snapshot().TotalClicks)
}

func TestStopAllFlushes(t *testing.T) {
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	manager := NewSessionManager(local, nil, newFakeClock())

	engine := manager.ForGuest("abc")
	engine.Do(game.Click{})
	manager.StopAll()

	saved, err := local.Load("guest-abc")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(1), saved.TotalClicks)
}

func TestLogoutWithoutSessionIsSafe(t *testing.T) {
	manager, _ := newTestManager(t)
	manager.Logout(999)
}
