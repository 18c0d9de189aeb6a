package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoExhaustsBudget(t *testing.T) {
	boom := errors.New("boom")
	attempts := 0

	_, err := Do(context.Background(), Policy{MaxAttempts: 4, BaseDelay: time.Millisecond},
		func(context.Context) (int, error) {
			attempts++
			return 0, boom
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, attempts)
}

func TestDoStopsOnSuccess(t *testing.T) {
	attempts := 0

	got, err := Do(context.Background(), Policy{MaxAttempts: 6, BaseDelay: time.Millisecond},
		func(context.Context) (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestDoLinearDelays(t *testing.T) {
	l := &linear{base: 2 * time.Second}
	assert.Equal(t, 2*time.Second, l.NextBackOff())
	assert.Equal(t, 4*time.Second, l.NextBackOff())
	assert.Equal(t, 6*time.Second, l.NextBackOff())
	l.Reset()
	assert.Equal(t, 2*time.Second, l.NextBackOff())
}

func TestDoZeroPolicyRunsOnce(t *testing.T) {
	attempts := 0
	_, err := Do(context.Background(), Policy{}, func(context.Context) (int, error) {
		attempts++
		return 0, errors.New("nope")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
