package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should pass within burst", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Exhausting one visitor does not touch another.
	assert.True(t, rl.Allow("10.0.0.2"))
}
