package access

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"agora/internal/access/mocks"
	"agora/internal/membership/models"
	"agora/internal/platform/cache"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
)

// =============================================================================
// Evaluator Test Suite
// =============================================================================
// Stores are mocked so each test states exactly which lookups a decision may
// make; a cached decision must not touch the stores again.

type EvaluatorSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	memberships  *mocks.MockMembershipReader
	capabilities *mocks.MockCapabilityReader
	permissions  *mocks.MockPermissionReader
	cache        *cache.Memory
	evaluator    *Evaluator

	userID      id.UserID
	territoryID id.TerritoryID
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.memberships = mocks.NewMockMembershipReader(s.ctrl)
	s.capabilities = mocks.NewMockCapabilityReader(s.ctrl)
	s.permissions = mocks.NewMockPermissionReader(s.ctrl)
	s.cache = cache.NewMemory()
	var err error
	s.evaluator, err = New(s.memberships, s.capabilities, s.permissions, s.cache,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithCacheTTL(time.Minute),
	)
	s.Require().NoError(err)

	s.userID = id.NewUserID()
	s.territoryID = id.NewTerritoryID()
}

func (s *EvaluatorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EvaluatorSuite) expectNotAdmin() {
	s.permissions.EXPECT().
		FindActive(gomock.Any(), s.userID, models.PermissionSystemAdmin).
		Return(nil, sentinel.ErrNotFound)
}

func (s *EvaluatorSuite) residentMembership() *models.Membership {
	m := models.NewVisitor(s.userID, s.territoryID, time.Now())
	m.ApplyResidency(time.Now())
	return m
}

func (s *EvaluatorSuite) TestNew() {
	s.Run("nil readers rejected", func() {
		_, err := New(nil, s.capabilities, s.permissions, s.cache)
		s.Error(err)
	})
	s.Run("nil cache rejected", func() {
		_, err := New(s.memberships, s.capabilities, s.permissions, nil)
		s.Error(err)
	})
}

func (s *EvaluatorSuite) TestSystemAdminHasEveryCapabilityEverywhere() {
	ctx := context.Background()
	s.permissions.EXPECT().
		FindActive(gomock.Any(), s.userID, models.PermissionSystemAdmin).
		Return(&models.SystemPermission{ID: id.NewPermissionID(), UserID: s.userID, Type: models.PermissionSystemAdmin}, nil).
		Times(1)

	for _, capType := range models.CapabilityTypes {
		for i := 0; i < 3; i++ {
			ok, err := s.evaluator.HasCapability(ctx, s.userID, id.NewTerritoryID(), capType)
			s.Require().NoError(err)
			s.True(ok, "system admin must hold %s in any territory", capType)
		}
	}
}

func (s *EvaluatorSuite) TestCapabilityFromMembershipIsCached() {
	ctx := context.Background()
	m := s.residentMembership()
	s.expectNotAdmin()
	s.memberships.EXPECT().FindByUserAndTerritory(gomock.Any(), s.userID, s.territoryID).Return(m, nil).Times(1)
	s.capabilities.EXPECT().FindActive(gomock.Any(), m.ID, models.CapabilityCurator).
		Return(&models.Capability{ID: id.NewCapabilityID(), MembershipID: m.ID, Type: models.CapabilityCurator}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		ok, err := s.evaluator.HasCapability(ctx, s.userID, s.territoryID, models.CapabilityCurator)
		s.Require().NoError(err)
		s.True(ok)
	}
}

func (s *EvaluatorSuite) TestNoMembershipIsFalseNotError() {
	ctx := context.Background()
	s.expectNotAdmin()
	s.memberships.EXPECT().FindByUserAndTerritory(gomock.Any(), s.userID, s.territoryID).Return(nil, sentinel.ErrNotFound)

	ok, err := s.evaluator.HasCapability(ctx, s.userID, s.territoryID, models.CapabilityModerator)
	s.Require().NoError(err)
	s.False(ok)

	resident, err := s.evaluator.IsResident(ctx, s.userID, s.territoryID)
	s.Require().NoError(err)
	s.False(resident)

	_, found, err := s.evaluator.GetRole(ctx, s.userID, s.territoryID)
	s.Require().NoError(err)
	s.False(found)
}

func (s *EvaluatorSuite) TestRepositoryFailureIsUnavailableAndNotCached() {
	ctx := context.Background()
	s.permissions.EXPECT().
		FindActive(gomock.Any(), s.userID, models.PermissionPlatformFinance).
		Return(nil, errors.New("connection reset")).
		Times(2)

	for i := 0; i < 2; i++ {
		ok, err := s.evaluator.HasSystemPermission(ctx, s.userID, models.PermissionPlatformFinance)
		s.Require().Error(err)
		s.False(ok)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.True(dErrors.IsRetryable(err))
	}
}

func (s *EvaluatorSuite) TestCacheFailureFailsClosed() {
	evaluator, err := New(s.memberships, s.capabilities, s.permissions, brokenCache{})
	s.Require().NoError(err)

	err = evaluator.RequireCapability(context.Background(), s.userID, s.territoryID, models.CapabilityCurator)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *EvaluatorSuite) TestStaleWindowUntilInvalidated() {
	ctx := context.Background()
	m := s.residentMembership()
	s.permissions.EXPECT().FindActive(gomock.Any(), s.userID, models.PermissionSystemAdmin).Return(nil, sentinel.ErrNotFound).Times(1)
	s.memberships.EXPECT().FindByUserAndTerritory(gomock.Any(), s.userID, s.territoryID).Return(m, nil).Times(2)
	gomock.InOrder(
		s.capabilities.EXPECT().FindActive(gomock.Any(), m.ID, models.CapabilityCurator).
			Return(&models.Capability{ID: id.NewCapabilityID()}, nil),
		s.capabilities.EXPECT().FindActive(gomock.Any(), m.ID, models.CapabilityCurator).
			Return(nil, sentinel.ErrNotFound),
	)

	ok, err := s.evaluator.HasCapability(ctx, s.userID, s.territoryID, models.CapabilityCurator)
	s.Require().NoError(err)
	s.True(ok)

	// The grant is revoked in the store, but no event has arrived yet.
	ok, err = s.evaluator.HasCapability(ctx, s.userID, s.territoryID, models.CapabilityCurator)
	s.Require().NoError(err)
	s.True(ok, "cached decision is served until invalidated")

	s.Require().NoError(s.evaluator.InvalidateMembershipCache(ctx, s.userID, s.territoryID))

	ok, err = s.evaluator.HasCapability(ctx, s.userID, s.territoryID, models.CapabilityCurator)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EvaluatorSuite) TestInvalidateSystemPermission() {
	ctx := context.Background()
	s.permissions.EXPECT().FindActive(gomock.Any(), s.userID, models.PermissionSystemAdmin).
		Return(&models.SystemPermission{ID: id.NewPermissionID()}, nil).Times(1)

	ok, err := s.evaluator.HasSystemPermission(ctx, s.userID, models.PermissionSystemAdmin)
	s.Require().NoError(err)
	s.True(ok)

	s.Require().NoError(s.evaluator.InvalidateSystemPermissionCache(ctx, s.userID, models.PermissionSystemAdmin))
	exists, err := s.cache.Exists(ctx, permissionKey(s.userID, models.PermissionSystemAdmin))
	s.Require().NoError(err)
	s.False(exists)
}

func (s *EvaluatorSuite) TestInvalidateRequiresTarget() {
	err := s.evaluator.Invalidate(context.Background(), Target{UserID: s.userID})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *EvaluatorSuite) TestRequireSystemPermission() {
	ctx := context.Background()

	s.Run("admin satisfies other permissions", func() {
		s.permissions.EXPECT().FindActive(gomock.Any(), s.userID, models.PermissionPlatformFinance).Return(nil, sentinel.ErrNotFound)
		s.permissions.EXPECT().FindActive(gomock.Any(), s.userID, models.PermissionSystemAdmin).
			Return(&models.SystemPermission{ID: id.NewPermissionID()}, nil)

		s.NoError(s.evaluator.RequireSystemPermission(ctx, s.userID, models.PermissionPlatformFinance))
	})

	s.Run("no permission is forbidden", func() {
		other := id.NewUserID()
		s.permissions.EXPECT().FindActive(gomock.Any(), other, gomock.Any()).Return(nil, sentinel.ErrNotFound).Times(2)

		err := s.evaluator.RequireSystemPermission(ctx, other, models.PermissionPlatformFinance)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *EvaluatorSuite) TestUnknownCapabilityIsValidationError() {
	_, err := s.evaluator.HasCapability(context.Background(), s.userID, s.territoryID, models.CapabilityType("wizard"))
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *EvaluatorSuite) TestGetRoleSharesMembershipEntry() {
	ctx := context.Background()
	m := s.residentMembership()
	s.memberships.EXPECT().FindByUserAndTerritory(gomock.Any(), s.userID, s.territoryID).Return(m, nil).Times(1)

	role, found, err := s.evaluator.GetRole(ctx, s.userID, s.territoryID)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(models.RoleResident, role)

	resident, err := s.evaluator.IsResident(ctx, s.userID, s.territoryID)
	s.Require().NoError(err)
	s.True(resident)
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis: connection refused")
}
func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis: connection refused")
}
func (brokenCache) Exists(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}
func (brokenCache) Remove(context.Context, ...string) error {
	return errors.New("redis: connection refused")
}
