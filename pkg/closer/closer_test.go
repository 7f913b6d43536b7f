package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClose_LIFOOrder(t *testing.T) {
	c := NewCloser(time.Second)

	var order []int
	for i := 1; i <= 3; i++ {
		c.Add(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	err := c.Close(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestClose_CollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)

	errBroken := errors.New("broken pipe")
	c.Add(func(ctx context.Context) error { return nil })
	c.Add(func(ctx context.Context) error { return errBroken })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
}

func TestClose_ForcedAfterContextCancel(t *testing.T) {
	c := NewCloser(500 * time.Millisecond)

	forced := make(chan struct{}, 1)
	c.Add(func(ctx context.Context) error {
		forced <- struct{}{}
		return nil
	})
	c.Add(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)

	select {
	case <-forced:
	case <-time.After(time.Second):
		t.Fatal("remaining close func was not invoked")
	}
}

func TestClose_Idempotent(t *testing.T) {
	c := NewCloser(time.Second)

	calls := 0
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}
