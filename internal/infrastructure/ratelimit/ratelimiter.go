// Package ratelimit throttles repeated login attempts.
package ratelimit

import "context"

// LoginLimiter bounds failed-login attempts per key (client IP or target
// email) in a sliding window. Allow reports whether another attempt may
// proceed; Reset clears the key after a successful login.
type LoginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NoopLimiter allows everything. Used when Redis is disabled.
type NoopLimiter struct{}

func (NoopLimiter) Allow(ctx context.Context, key string) (bool, error) { return true, nil }
func (NoopLimiter) Reset(ctx context.Context, key string) error         { return nil }
