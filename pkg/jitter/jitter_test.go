package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := 2 * time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestExponentialBackoff_CappedAtMax(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	d := ExponentialBackoff(base, max, 20, 0)
	assert.Equal(t, max, d)
}

func TestExponentialBackoff_Doubles(t *testing.T) {
	base := time.Second
	max := time.Minute

	assert.Equal(t, time.Second, ExponentialBackoff(base, max, 0, 0))
	assert.Equal(t, 2*time.Second, ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 8*time.Second, ExponentialBackoff(base, max, 3, 0))
}
