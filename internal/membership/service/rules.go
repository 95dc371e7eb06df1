package service

import (
	"context"
	"errors"

	"agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
)

// MembershipFinder is the single lookup the rules need.
type MembershipFinder interface {
	FindByUserAndTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
}

// AccessRules are uncached predicates over membership state. A missing
// membership is a false result; only store failures are errors.
type AccessRules struct {
	memberships MembershipFinder
}

func NewAccessRules(memberships MembershipFinder) *AccessRules {
	return &AccessRules{memberships: memberships}
}

// IsVerifiedResident is true iff the user is a Resident of the territory with
// any verification other than none.
func (r *AccessRules) IsVerifiedResident(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error) {
	m, err := r.memberships.FindByUserAndTerritory(ctx, userID, territoryID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeUnavailable, "membership lookup failed")
	}
	return m.IsVerifiedResident(), nil
}

func (r *AccessRules) CanCreateStore(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error) {
	return r.IsVerifiedResident(ctx, userID, territoryID)
}

func (r *AccessRules) CanCreateItem(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error) {
	return r.IsVerifiedResident(ctx, userID, territoryID)
}
