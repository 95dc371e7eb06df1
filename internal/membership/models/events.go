package models

import (
	"time"

	id "agora/pkg/domain"
)

// Event bus topics carrying access-relevant changes.
const (
	TopicCapabilityGranted = "agora.access.capability-granted"
	TopicCapabilityRevoked = "agora.access.capability-revoked"
	TopicPermissionGranted = "agora.access.permission-granted"
	TopicPermissionRevoked = "agora.access.permission-revoked"
	TopicMembershipChanged = "agora.access.membership-changed"
)

// CapabilityChanged is published after a capability grant or revoke commits.
type CapabilityChanged struct {
	CapabilityID id.CapabilityID `json:"capability_id"`
	MembershipID id.MembershipID `json:"membership_id"`
	TerritoryID  id.TerritoryID  `json:"territory_id"`
	UserID       id.UserID       `json:"user_id"`
	Type         CapabilityType  `json:"type"`
	ActorID      id.UserID       `json:"actor_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// PermissionChanged is published after a system permission grant or revoke commits.
type PermissionChanged struct {
	PermissionID id.PermissionID `json:"permission_id"`
	UserID       id.UserID       `json:"user_id"`
	Type         PermissionType  `json:"type"`
	ActorID      id.UserID       `json:"actor_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// MembershipChanged is published when a membership is created or its role or
// verification changes.
type MembershipChanged struct {
	MembershipID id.MembershipID `json:"membership_id"`
	TerritoryID  id.TerritoryID  `json:"territory_id"`
	UserID       id.UserID       `json:"user_id"`
	Role         Role            `json:"role"`
	Verification Verification    `json:"verification"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
