package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	tracker := NewTracker()

	first := tracker.Next("session-1:patients")
	assert.True(t, tracker.IsCurrent("session-1:patients", first))

	second := tracker.Next("session-1:patients")
	assert.False(t, tracker.IsCurrent("session-1:patients", first), "older token should be stale")
	assert.True(t, tracker.IsCurrent("session-1:patients", second))

	other := tracker.Next("session-2:patients")
	assert.True(t, tracker.IsCurrent("session-2:patients", other), "keys should be independent")
	assert.True(t, tracker.IsCurrent("session-1:patients", second))

	tracker.Forget("session-1:patients")
	assert.False(t, tracker.IsCurrent("session-1:patients", second))
}

func TestTrackerForgetPrefix(t *testing.T) {
	tracker := NewTracker()
	patients := tracker.Next("session-1:patient")
	kaders := tracker.Next("session-1:kader")
	other := tracker.Next("session-2:patient")

	tracker.ForgetPrefix("session-1:")

	assert.False(t, tracker.IsCurrent("session-1:patient", patients))
	assert.False(t, tracker.IsCurrent("session-1:kader", kaders))
	assert.True(t, tracker.IsCurrent("session-2:patient", other))
}
