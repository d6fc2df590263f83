package clock_test

import (
	"testing"
	"time"

	"payping-dispatch/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "stays fixed until moved")

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())

	later := start.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestRealClock_UTC(t *testing.T) {
	c := clock.NewRealClock()
	assert.Equal(t, time.UTC, c.Now().Location())
}
