package models

import (
	"time"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

// Role is a user's standing in a territory.
type Role string

const (
	RoleVisitor  Role = "visitor"
	RoleResident Role = "resident"
)

func (r Role) IsValid() bool {
	return r == RoleVisitor || r == RoleResident
}

// Verification records how residency was proven.
type Verification string

const (
	VerificationNone     Verification = "none"
	VerificationGeo      Verification = "geo_verified"
	VerificationDocument Verification = "document_verified"
)

// ParseVerification parses a verification kind submitted by a curator.
// None is not a valid target; verification is never withdrawn this way.
func ParseVerification(s string) (Verification, error) {
	switch v := Verification(s); v {
	case VerificationGeo, VerificationDocument:
		return v, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, "verification must be geo_verified or document_verified")
	}
}

// Membership is a user's relationship to one territory.
//
// Invariants:
//   - at most one Resident membership per user across all territories
//   - one membership per (user, territory)
//   - never deleted; role and verification change in place
type Membership struct {
	ID                 id.MembershipID `json:"id"`
	UserID             id.UserID       `json:"user_id"`
	TerritoryID        id.TerritoryID  `json:"territory_id"`
	Role               Role            `json:"role"`
	Verification       Verification    `json:"verification"`
	GeoVerifiedAt      *time.Time      `json:"geo_verified_at,omitempty"`
	DocumentVerifiedAt *time.Time      `json:"document_verified_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewVisitor builds the membership created on first territory entry.
func NewVisitor(userID id.UserID, territoryID id.TerritoryID, now time.Time) *Membership {
	return &Membership{
		ID:           id.NewMembershipID(),
		UserID:       userID,
		TerritoryID:  territoryID,
		Role:         RoleVisitor,
		Verification: VerificationNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (m *Membership) IsResident() bool {
	return m.Role == RoleResident
}

// IsVerifiedResident is the predicate behind store and item creation.
func (m *Membership) IsVerifiedResident() bool {
	return m.Role == RoleResident && m.Verification != VerificationNone
}

// ApplyResidency promotes the membership to Resident. Verification is kept.
func (m *Membership) ApplyResidency(now time.Time) {
	m.Role = RoleResident
	m.UpdatedAt = now
}

// CanVerify checks that residency verification applies to this membership.
func (m *Membership) CanVerify() error {
	if !m.IsResident() {
		return dErrors.New(dErrors.CodeConflict, "only resident memberships can be verified")
	}
	return nil
}

// ApplyVerification records the verification kind and its timestamp.
func (m *Membership) ApplyVerification(kind Verification, now time.Time) {
	switch kind {
	case VerificationGeo:
		m.GeoVerifiedAt = &now
	case VerificationDocument:
		m.DocumentVerifiedAt = &now
	}
	// Document verification is the stronger proof and is never downgraded.
	if m.Verification != VerificationDocument {
		m.Verification = kind
	}
	m.UpdatedAt = now
}
