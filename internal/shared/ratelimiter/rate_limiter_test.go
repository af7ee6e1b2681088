package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit, then denies", func(t *testing.T) {
		l := NewLimiter(3, time.Minute)

		assert.True(t, l.Allow("1.2.3.4"))
		assert.True(t, l.Allow("1.2.3.4"))
		assert.True(t, l.Allow("1.2.3.4"))
		assert.False(t, l.Allow("1.2.3.4"))
		assert.False(t, l.Allow("1.2.3.4"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewLimiter(1, time.Minute)

		assert.True(t, l.Allow("1.2.3.4"))
		assert.False(t, l.Allow("1.2.3.4"))
		assert.True(t, l.Allow("5.6.7.8"))
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		l := NewLimiter(1, 10*time.Millisecond)

		assert.True(t, l.Allow("1.2.3.4"))
		assert.False(t, l.Allow("1.2.3.4"))

		time.Sleep(15 * time.Millisecond)
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("denied attempts do not extend the window", func(t *testing.T) {
		l := NewLimiter(1, 20*time.Millisecond)

		assert.True(t, l.Allow("1.2.3.4"))
		for i := 0; i < 5; i++ {
			assert.False(t, l.Allow("1.2.3.4"))
		}

		time.Sleep(25 * time.Millisecond)
		assert.True(t, l.Allow("1.2.3.4"))
	})
}

func TestNewLoginLimiter(t *testing.T) {
	t.Run("default is ten attempts per minute", func(t *testing.T) {
		t.Setenv("LOGIN_RATE_LIMIT", "")
		l := NewLoginLimiter()
		assert.Equal(t, 10, l.limit)
		assert.Equal(t, time.Minute, l.interval)
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("LOGIN_RATE_LIMIT", "3")
		l := NewLoginLimiter()
		assert.Equal(t, 3, l.limit)
	})

	t.Run("unparsable value falls back to the default", func(t *testing.T) {
		t.Setenv("LOGIN_RATE_LIMIT", "lots")
		assert.Equal(t, 10, NewLoginLimiter().limit)
	})
}
