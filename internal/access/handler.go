package access

import (
	"context"
	"log/slog"

	"agora/internal/membership/models"
	"agora/internal/platform/eventbus"
	"agora/pkg/platform/codec"
)

// Invalidator is the eviction entry point the handler drives.
type Invalidator interface {
	Invalidate(ctx context.Context, target Target) error
}

// InvalidationHandler evicts access cache entries when membership, capability
// or permission events arrive. It is the asynchronous path to Invalidate.
type InvalidationHandler struct {
	invalidator Invalidator
	logger      *slog.Logger
}

func NewInvalidationHandler(invalidator Invalidator, logger *slog.Logger) *InvalidationHandler {
	return &InvalidationHandler{invalidator: invalidator, logger: logger}
}

// Register subscribes the handler to every access topic.
func (h *InvalidationHandler) Register(r *eventbus.Router) {
	for _, topic := range []string{
		models.TopicCapabilityGranted,
		models.TopicCapabilityRevoked,
		models.TopicPermissionGranted,
		models.TopicPermissionRevoked,
		models.TopicMembershipChanged,
	} {
		r.Register(topic, h)
	}
}

// Handle decodes the event and evicts the affected entries. Malformed payloads
// are logged and acknowledged; eviction failures are returned for redelivery.
func (h *InvalidationHandler) Handle(ctx context.Context, msg *eventbus.Message) error {
	target, ok := h.decode(ctx, msg)
	if !ok {
		return nil
	}
	if err := h.invalidator.Invalidate(ctx, target); err != nil {
		h.logger.ErrorContext(ctx, "access cache invalidation failed",
			"topic", msg.Topic,
			"user_id", target.UserID,
			"error", err,
		)
		return err
	}
	return nil
}

func (h *InvalidationHandler) decode(ctx context.Context, msg *eventbus.Message) (Target, bool) {
	switch msg.Topic {
	case models.TopicCapabilityGranted, models.TopicCapabilityRevoked:
		var ev models.CapabilityChanged
		if err := codec.Unmarshal(msg.Value, &ev); err != nil || ev.UserID.IsNil() || ev.TerritoryID.IsNil() {
			h.malformed(ctx, msg, err)
			return Target{}, false
		}
		return Target{UserID: ev.UserID, TerritoryID: ev.TerritoryID}, true
	case models.TopicMembershipChanged:
		var ev models.MembershipChanged
		if err := codec.Unmarshal(msg.Value, &ev); err != nil || ev.UserID.IsNil() || ev.TerritoryID.IsNil() {
			h.malformed(ctx, msg, err)
			return Target{}, false
		}
		return Target{UserID: ev.UserID, TerritoryID: ev.TerritoryID}, true
	case models.TopicPermissionGranted, models.TopicPermissionRevoked:
		var ev models.PermissionChanged
		if err := codec.Unmarshal(msg.Value, &ev); err != nil || ev.UserID.IsNil() || !ev.Type.IsValid() {
			h.malformed(ctx, msg, err)
			return Target{}, false
		}
		return Target{UserID: ev.UserID, PermissionType: ev.Type}, true
	default:
		h.logger.WarnContext(ctx, "unexpected topic for access invalidation", "topic", msg.Topic)
		return Target{}, false
	}
}

func (h *InvalidationHandler) malformed(ctx context.Context, msg *eventbus.Message, err error) {
	h.logger.ErrorContext(ctx, "dropping malformed access event",
		"topic", msg.Topic,
		"key", string(msg.Key),
		"error", err,
	)
}
