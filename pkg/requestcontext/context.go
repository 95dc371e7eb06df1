// Package requestcontext carries request-scoped values through context so
// services never import net/http. Middleware writes them; background workers
// that run outside a request get zero values and the wall clock.
package requestcontext

import (
	"context"
	"time"

	id "agora/pkg/domain"
)

type key int

const (
	userIDKey key = iota
	requestIDKey
	requestTimeKey
)

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// UserID is the authenticated caller, or the nil id outside a request.
func UserID(ctx context.Context) id.UserID {
	v, _ := value[id.UserID](ctx, userIDKey)
	return v
}

func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func RequestID(ctx context.Context) string {
	v, _ := value[string](ctx, requestIDKey)
	return v
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Now is the time the request started. Every timestamp written while serving
// one request or one payout run uses it.
func Now(ctx context.Context) time.Time {
	if t, ok := value[time.Time](ctx, requestTimeKey); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the clock. Tests and the payout batch use it.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey, t)
}
