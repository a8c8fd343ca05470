package usecase_test

import (
	"context"
	"testing"
	"time"

	"cashbook/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrewTimer_Adjust(t *testing.T) {
	timer := usecase.NewBrewTimer(usecase.RestDuration)
	assert.Equal(t, "06:30", timer.String())

	timer.AddMinute()
	assert.Equal(t, "07:30", timer.String())

	for range 10 {
		timer.SubMinute()
	}
	assert.Equal(t, time.Minute, timer.Remaining(), "never below one minute")
	assert.Equal(t, "01:00", timer.String())
}

func TestBrewTimer_Tick(t *testing.T) {
	timer := usecase.NewBrewTimer(2*time.Second + 400*time.Millisecond)
	assert.Equal(t, 2*time.Second, timer.Remaining())

	assert.False(t, timer.Tick(), "stopped timer does not move")
	assert.Equal(t, 2*time.Second, timer.Remaining())

	timer.Toggle()
	require.True(t, timer.Running())
	assert.False(t, timer.Tick())
	assert.True(t, timer.Tick())
	assert.True(t, timer.Done())
	assert.False(t, timer.Running())
	assert.Equal(t, "00:00", timer.String())

	assert.False(t, timer.Tick())
	timer.Toggle()
	assert.False(t, timer.Running(), "finished timer stays stopped")
}

func TestBrewTimer_Run(t *testing.T) {
	ticks := make(chan time.Time, 3)
	for range 3 {
		ticks <- time.Time{}
	}

	timer := usecase.NewBrewTimer(3 * time.Second)
	var seen []string
	err := timer.Run(context.Background(), ticks, func(bt *usecase.BrewTimer) {
		seen = append(seen, bt.String())
	})

	require.NoError(t, err)
	assert.True(t, timer.Done())
	assert.Equal(t, []string{"00:02", "00:01", "00:00"}, seen)
}

func TestBrewTimer_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	timer := usecase.NewBrewTimer(time.Minute)
	err := timer.Run(ctx, make(chan time.Time), nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, timer.Running())
	assert.False(t, timer.Done())
	assert.Equal(t, time.Minute, timer.Remaining())
}
