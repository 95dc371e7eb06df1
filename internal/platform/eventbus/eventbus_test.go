package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/pkg/platform/codec"
)

type revoked struct {
	UserID string `json:"user_id"`
}

func TestInMemory_DeliversThroughRouter(t *testing.T) {
	bus := NewInMemory()
	router := NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var got []revoked
	router.Register("agora.access.capability-revoked", HandlerFunc(func(_ context.Context, msg *Message) error {
		var ev revoked
		require.NoError(t, codec.Unmarshal(msg.Value, &ev))
		assert.Equal(t, "user-1", string(msg.Key))
		got = append(got, ev)
		return nil
	}))
	bus.Attach(router)

	require.NoError(t, bus.Publish(context.Background(), "agora.access.capability-revoked", "user-1", revoked{UserID: "user-1"}))
	require.NoError(t, bus.Publish(context.Background(), "agora.unrouted", "k", revoked{}))

	assert.Equal(t, []revoked{{UserID: "user-1"}}, got)
}

func TestInMemory_ReturnsHandlerError(t *testing.T) {
	bus := NewInMemory()
	boom := errors.New("cache down")
	bus.Attach(HandlerFunc(func(context.Context, *Message) error { return boom }))

	err := bus.Publish(context.Background(), "t", "k", revoked{})
	assert.ErrorIs(t, err, boom)
}

func TestInMemory_NoHandlerIsNoop(t *testing.T) {
	assert.NoError(t, NewInMemory().Publish(context.Background(), "t", "k", revoked{}))
}
