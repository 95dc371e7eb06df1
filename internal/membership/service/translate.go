package service

import (
	"errors"
	"time"

	"agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
)

// translate maps store sentinels onto domain codes. Domain errors pass through.
func translate(err error, notFoundMsg, internalMsg string) error {
	var de *dErrors.Error
	switch {
	case errors.As(err, &de):
		return err
	case notFoundMsg != "" && errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFoundMsg)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting membership state")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internalMsg)
	}
}

func capabilityEvent(c *models.Capability, m *models.Membership, actorID id.UserID, at time.Time) models.CapabilityChanged {
	return models.CapabilityChanged{
		CapabilityID: c.ID,
		MembershipID: m.ID,
		TerritoryID:  m.TerritoryID,
		UserID:       m.UserID,
		Type:         c.Type,
		ActorID:      actorID,
		OccurredAt:   at,
	}
}

func permissionEvent(p *models.SystemPermission, actorID id.UserID, at time.Time) models.PermissionChanged {
	return models.PermissionChanged{
		PermissionID: p.ID,
		UserID:       p.UserID,
		Type:         p.Type,
		ActorID:      actorID,
		OccurredAt:   at,
	}
}
