package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(ctx, "1.2.3.4:/contact"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow(ctx, "1.2.3.4:/contact"))
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "1.2.3.4:/contact"))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4:/contact"))

	// Different address, different budget.
	assert.True(t, limiter.Allow(ctx, "5.6.7.8:/contact"))
	// Same address, different endpoint.
	assert.True(t, limiter.Allow(ctx, "1.2.3.4:/contact/academy"))
}

func TestRateLimiterWindowResets(t *testing.T) {
	limiter := NewRateLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "1.2.3.4:/contact"))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4:/contact"))

	time.Sleep(25 * time.Millisecond)
	assert.True(t, limiter.Allow(ctx, "1.2.3.4:/contact"))
}
