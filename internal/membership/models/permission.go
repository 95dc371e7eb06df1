package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

// PermissionType is a global, territory-independent grant.
type PermissionType string

const (
	// PermissionSystemAdmin implies every capability in every territory.
	PermissionSystemAdmin PermissionType = "system_admin"
	// PermissionPlatformFinance manages platform fee configuration everywhere.
	PermissionPlatformFinance PermissionType = "platform_finance"
)

// PermissionTypes lists every permission kind.
var PermissionTypes = []PermissionType{PermissionSystemAdmin, PermissionPlatformFinance}

func (p PermissionType) IsValid() bool {
	switch p {
	case PermissionSystemAdmin, PermissionPlatformFinance:
		return true
	default:
		return false
	}
}

func ParsePermissionType(s string) (PermissionType, error) {
	p := PermissionType(s)
	if !p.IsValid() {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown permission type %q", s)
	}
	return p, nil
}

// SystemPermission is active iff RevokedAt is nil.
type SystemPermission struct {
	ID        id.PermissionID `json:"id"`
	UserID    id.UserID       `json:"user_id"`
	Type      PermissionType  `json:"type"`
	GrantedAt time.Time       `json:"granted_at"`
	GrantedBy id.UserID       `json:"granted_by"`
	RevokedAt *time.Time      `json:"revoked_at,omitempty"`
	RevokedBy *id.UserID      `json:"revoked_by,omitempty"`
}

func (p *SystemPermission) IsActive() bool {
	return p.RevokedAt == nil
}

func (p *SystemPermission) CanRevoke() error {
	if !p.IsActive() {
		return dErrors.New(dErrors.CodeConflict, "permission already revoked")
	}
	return nil
}

func (p *SystemPermission) ApplyRevoke(actor id.UserID, now time.Time) {
	p.RevokedAt = &now
	p.RevokedBy = &actor
}
