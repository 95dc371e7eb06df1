//go:build integration

package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"agora/internal/membership/models"
	"agora/internal/membership/store"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres     *containers.PostgresContainer
	memberships  *store.PostgresMembershipStore
	capabilities *store.PostgresCapabilityStore
	permissions  *store.PostgresPermissionStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.memberships = store.NewPostgresMembershipStore(s.postgres.DB)
	s.capabilities = store.NewPostgresCapabilityStore(s.postgres.DB)
	s.permissions = store.NewPostgresPermissionStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "membership_capabilities", "system_permissions", "territory_memberships")
	s.Require().NoError(err)
}

// TestConcurrentResidencyClaims verifies the partial unique index lets exactly
// one of many concurrent resident memberships through.
func (s *PostgresStoreSuite) TestConcurrentResidencyClaims() {
	ctx := context.Background()
	userID := id.NewUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := models.NewVisitor(userID, id.NewTerritoryID(), now)
			m.ApplyResidency(now)
			err := s.memberships.Create(ctx, m)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, sentinel.ErrConflict):
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *PostgresStoreSuite) TestMembershipRoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := models.NewVisitor(id.NewUserID(), id.NewTerritoryID(), now)
	s.Require().NoError(s.memberships.Create(ctx, m))

	m.ApplyResidency(now)
	m.ApplyVerification(models.VerificationGeo, now)
	s.Require().NoError(s.memberships.Update(ctx, m))

	found, err := s.memberships.FindByUserAndTerritory(ctx, m.UserID, m.TerritoryID)
	s.Require().NoError(err)
	s.Equal(models.RoleResident, found.Role)
	s.Equal(models.VerificationGeo, found.Verification)
	s.Require().NotNil(found.GeoVerifiedAt)
	s.True(found.GeoVerifiedAt.Equal(now))
	s.Nil(found.DocumentVerifiedAt)
}

func (s *PostgresStoreSuite) TestCapabilityRevokeInTransaction() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := models.NewVisitor(id.NewUserID(), id.NewTerritoryID(), now)
	s.Require().NoError(s.memberships.Create(ctx, m))

	grant := &models.Capability{
		ID:           id.NewCapabilityID(),
		MembershipID: m.ID,
		Type:         models.CapabilityModerator,
		GrantedAt:    now,
		GrantedBy:    id.NewUserID(),
		Note:         "weekend shift",
	}
	s.Require().NoError(s.capabilities.Create(ctx, grant))

	runner := tx.NewSQLRunner(s.postgres.DB)
	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.capabilities.FindActive(ctx, m.ID, models.CapabilityModerator)
		if err != nil {
			return err
		}
		c.ApplyRevoke(id.NewUserID(), now)
		return s.capabilities.Update(ctx, c)
	})
	s.Require().NoError(err)

	_, err = s.capabilities.FindActive(ctx, m.ID, models.CapabilityModerator)
	s.ErrorIs(err, sentinel.ErrNotFound)

	stored, err := s.capabilities.FindByID(ctx, grant.ID)
	s.Require().NoError(err)
	s.NotNil(stored.RevokedAt)
	s.NotNil(stored.RevokedBy)
	s.Equal("weekend shift", stored.Note)
}

func (s *PostgresStoreSuite) TestPermissionUniqueActive() {
	ctx := context.Background()
	userID := id.NewUserID()
	now := time.Now().UTC()
	p := &models.SystemPermission{ID: id.NewPermissionID(), UserID: userID, Type: models.PermissionSystemAdmin, GrantedAt: now, GrantedBy: userID}
	s.Require().NoError(s.permissions.Create(ctx, p))

	dup := *p
	dup.ID = id.NewPermissionID()
	s.ErrorIs(s.permissions.Create(ctx, &dup), sentinel.ErrConflict)
}
