package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

// CapabilityType is a territory-scoped grant attached to a membership.
// The set is closed; the evaluator switches over it.
type CapabilityType string

const (
	CapabilityCurator          CapabilityType = "curator"
	CapabilityModerator        CapabilityType = "moderator"
	CapabilityEventOrganizer   CapabilityType = "event_organizer"
	CapabilityFinancialManager CapabilityType = "financial_manager"
)

// CapabilityTypes lists every capability kind.
var CapabilityTypes = []CapabilityType{
	CapabilityCurator,
	CapabilityModerator,
	CapabilityEventOrganizer,
	CapabilityFinancialManager,
}

func (c CapabilityType) IsValid() bool {
	switch c {
	case CapabilityCurator, CapabilityModerator, CapabilityEventOrganizer, CapabilityFinancialManager:
		return true
	default:
		return false
	}
}

func ParseCapabilityType(s string) (CapabilityType, error) {
	c := CapabilityType(s)
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown capability type %q", s)
	}
	return c, nil
}

// Capability is active iff RevokedAt is nil.
type Capability struct {
	ID           id.CapabilityID `json:"id"`
	MembershipID id.MembershipID `json:"membership_id"`
	Type         CapabilityType  `json:"type"`
	GrantedAt    time.Time       `json:"granted_at"`
	GrantedBy    id.UserID       `json:"granted_by"`
	RevokedAt    *time.Time      `json:"revoked_at,omitempty"`
	RevokedBy    *id.UserID      `json:"revoked_by,omitempty"`
	Note         string          `json:"note,omitempty"`
}

func (c *Capability) IsActive() bool {
	return c.RevokedAt == nil
}

func (c *Capability) CanRevoke() error {
	if !c.IsActive() {
		return dErrors.New(dErrors.CodeConflict, "capability already revoked")
	}
	return nil
}

func (c *Capability) ApplyRevoke(actor id.UserID, now time.Time) {
	c.RevokedAt = &now
	c.RevokedBy = &actor
}
