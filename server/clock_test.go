package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(start)
	require.Equal(t, start, c.Now())

	c.Advance(50 * time.Millisecond)
	require.Equal(t, start.Add(50*time.Millisecond), c.Now())
}
