// ABOUTME: Tests for the follow-up viewer and scroll lock
// ABOUTME: Verifies every close path releases the lock exactly once
package modal

import (
	"testing"

	"github.com/harperreed/crmdash/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollLockRelease(t *testing.T) {
	var l ScrollLock
	assert.False(t, l.Locked())

	r1 := l.Acquire()
	r2 := l.Acquire()
	assert.True(t, l.Locked())

	r1()
	r1()
	assert.True(t, l.Locked(), "double release must not drop the other holder")

	r2()
	assert.False(t, l.Locked())
}

func TestEveryCloseReasonReleases(t *testing.T) {
	s := store.NewDefault()
	for _, reason := range []CloseReason{CloseButton, Backdrop, Escape, Unmount} {
		var l ScrollLock
		v := NewFollowUpViewer(&l)

		var got []CloseReason
		v.OnClose(func(r CloseReason) { got = append(got, r) })

		v.Open(1, "John Doe", s.FollowUps(1))
		require.True(t, l.Locked())

		v.Close(reason)
		assert.False(t, l.Locked(), reason.String())
		assert.False(t, v.IsOpen())

		v.Close(reason)
		assert.Equal(t, []CloseReason{reason}, got, "second close is a no-op")
	}
}

func TestReopenDoesNotDoubleAcquire(t *testing.T) {
	s := store.NewDefault()
	var l ScrollLock
	v := NewFollowUpViewer(&l)

	v.Open(1, "John Doe", s.FollowUps(1))
	v.Open(2, "Jane Smith", s.FollowUps(2))
	assert.Equal(t, 2, v.LeadID())
	assert.Len(t, v.Entries(), 3)

	v.Close(CloseButton)
	assert.False(t, l.Locked())
}

func TestHandleKey(t *testing.T) {
	var l ScrollLock
	v := NewFollowUpViewer(&l)

	assert.False(t, v.HandleKey("esc"), "closed viewer ignores keys")

	v.Open(3, "Mike Johnson", nil)
	assert.False(t, v.HandleKey("q"))
	assert.True(t, v.IsOpen())

	assert.True(t, v.HandleKey("esc"))
	assert.False(t, v.IsOpen())
	assert.False(t, l.Locked())
}

func TestEmptyHistory(t *testing.T) {
	s := store.NewDefault()
	var l ScrollLock
	v := NewFollowUpViewer(&l)

	v.Open(4, "Sarah Williams", s.FollowUps(4))
	assert.True(t, v.Empty())
	assert.Empty(t, v.Entries())
	assert.True(t, l.Locked())
}

func TestEntriesKeepOrder(t *testing.T) {
	s := store.NewDefault()
	var l ScrollLock
	v := NewFollowUpViewer(&l)

	v.Open(2, "Jane Smith", s.FollowUps(2))
	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-12-07", entries[0].Date)
	assert.Equal(t, "2024-12-03", entries[2].Date)
	assert.False(t, v.Empty())
}
