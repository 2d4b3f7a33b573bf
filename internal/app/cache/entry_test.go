package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryExpiry(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	e := &Entry{CreatedAt: t0, TTL: 30 * time.Minute}

	assert.False(t, e.IsExpired(t0))
	assert.False(t, e.IsExpired(t0.Add(30*time.Minute-time.Nanosecond)))
	assert.True(t, e.IsExpired(t0.Add(30*time.Minute)))
	assert.True(t, e.IsExpired(t0.Add(time.Hour)))

	assert.Equal(t, 30*time.Minute, e.Remaining(t0))
	assert.Equal(t, 10*time.Minute, e.Remaining(t0.Add(20*time.Minute)))
	assert.Zero(t, e.Remaining(t0.Add(2*time.Hour)))
}
