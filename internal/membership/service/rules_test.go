package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/membership/models"
	"agora/internal/membership/store"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

func TestAccessRules_IsVerifiedResident(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	memberships := store.NewInMemoryMembershipStore()
	rules := NewAccessRules(memberships)
	territoryID := id.NewTerritoryID()

	visitor := models.NewVisitor(id.NewUserID(), territoryID, now)
	unverified := models.NewVisitor(id.NewUserID(), territoryID, now)
	unverified.ApplyResidency(now)
	verified := models.NewVisitor(id.NewUserID(), territoryID, now)
	verified.ApplyResidency(now)
	verified.ApplyVerification(models.VerificationGeo, now)
	for _, m := range []*models.Membership{visitor, unverified, verified} {
		require.NoError(t, memberships.Create(ctx, m))
	}

	tests := []struct {
		name   string
		userID id.UserID
		want   bool
	}{
		{name: "no membership", userID: id.NewUserID(), want: false},
		{name: "visitor", userID: visitor.UserID, want: false},
		{name: "unverified resident", userID: unverified.UserID, want: false},
		{name: "verified resident", userID: verified.UserID, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := rules.CanCreateStore(ctx, tt.userID, territoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			ok, err = rules.CanCreateItem(ctx, tt.userID, territoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAccessRules_StoreFailureIsUnavailable(t *testing.T) {
	rules := NewAccessRules(brokenFinder{})
	_, err := rules.IsVerifiedResident(context.Background(), id.NewUserID(), id.NewTerritoryID())
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnavailable, dErrors.CodeOf(err))
}

type brokenFinder struct{}

func (brokenFinder) FindByUserAndTerritory(context.Context, id.UserID, id.TerritoryID) (*models.Membership, error) {
	return nil, errors.New("connection reset")
}
