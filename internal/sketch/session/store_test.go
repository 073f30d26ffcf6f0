package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebeat-kr/souvenir-backend/internal/sketch"
)

func newTestSession(t *testing.T, store *Store) *Session {
	t.Helper()
	return store.Create(40, 30, 1, 100, 50)
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	store.Delete(sess.ID)

	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_StrokeExportsPayload(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	_, ok := sess.Payload()
	assert.False(t, ok, "fresh session has no payload")

	// Viewport coordinates; the session subtracts its origin.
	require.NoError(t, sess.Pointer("down", sketch.MouseEvent{ClientX: 110, ClientY: 60}))
	require.NoError(t, sess.Pointer("move", sketch.MouseEvent{ClientX: 130, ClientY: 70}))
	require.NoError(t, sess.Pointer("up", sketch.MouseEvent{ClientX: 130, ClientY: 70}))

	payload, ok := sess.Payload()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(payload, "data:image/png;base64,"))
}

func TestSession_ClearDropsPayload(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	require.NoError(t, sess.Pointer("down", sketch.MouseEvent{ClientX: 110, ClientY: 60}))
	require.NoError(t, sess.Pointer("up", sketch.MouseEvent{}))

	sess.Clear()

	_, ok := sess.Payload()
	assert.False(t, ok)
}

func TestSession_EmptyTouchIsIgnored(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	require.NoError(t, sess.Pointer("down", sketch.TouchEvent{}))
	require.NoError(t, sess.Pointer("up", sketch.TouchEvent{}))

	_, ok := sess.Payload()
	assert.True(t, ok, "an up event still exports even if the down was ignored")
}

func TestSession_UnknownPointerKind(t *testing.T) {
	store := NewStore(time.Hour)
	sess := newTestSession(t, store)

	err := sess.Pointer("hover", sketch.MouseEvent{ClientX: 1, ClientY: 1})
	assert.Error(t, err)
}

func TestStore_SweepRemovesIdleSessions(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	idle := newTestSession(t, store)
	fresh := newTestSession(t, store)

	time.Sleep(20 * time.Millisecond)
	fresh.SetColor("red")

	removed := store.Sweep()
	assert.Equal(t, 1, removed)

	_, err := store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}
