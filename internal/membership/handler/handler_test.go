package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"agora/internal/membership/handler/mocks"
	"agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/testutil"
)

type MembershipHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	userID  id.UserID
}

func TestMembershipHandlerSuite(t *testing.T) {
	suite.Run(t, new(MembershipHandlerSuite))
}

func (s *MembershipHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
	s.userID = id.NewUserID()
}

func (s *MembershipHandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithUserID(req, s.userID))
}

func (s *MembershipHandlerSuite) TestClaimResidency() {
	territoryID := id.NewTerritoryID()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	m := models.NewVisitor(s.userID, territoryID, now)
	m.ApplyResidency(now)
	s.service.EXPECT().ClaimResidency(gomock.Any(), s.userID, territoryID).Return(m, nil)

	rr := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/territories/"+territoryID.String()+"/residency"))

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "role", "resident")
}

func (s *MembershipHandlerSuite) TestClaimResidencyConflict() {
	territoryID := id.NewTerritoryID()
	s.service.EXPECT().ClaimResidency(gomock.Any(), s.userID, territoryID).
		Return(nil, dErrors.New(dErrors.CodeConflict, "user is already a resident of another territory"))

	rr := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/territories/"+territoryID.String()+"/residency"))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
}

func (s *MembershipHandlerSuite) TestInvalidPathID() {
	rr := s.do(testutil.NewRequest(s.T(), http.MethodPost, "/territories/not-a-uuid/enter"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_input")
}

func (s *MembershipHandlerSuite) TestVerifyResidency() {
	membershipID := id.NewMembershipID()

	s.Run("rejects none", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/memberships/"+membershipID.String()+"/verify",
			map[string]string{"verification": "none"})
		rr := s.do(req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("forbidden without curator", func() {
		s.service.EXPECT().VerifyResidency(gomock.Any(), s.userID, membershipID, models.VerificationGeo).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "missing curator capability"))
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/memberships/"+membershipID.String()+"/verify",
			map[string]string{"verification": "geo_verified"})
		rr := s.do(req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})
}

func (s *MembershipHandlerSuite) TestGrantCapability() {
	membershipID := id.NewMembershipID()
	s.service.EXPECT().GrantCapability(gomock.Any(), s.userID, membershipID, models.CapabilityModerator, "nights").
		Return(&models.Capability{ID: id.NewCapabilityID(), MembershipID: membershipID, Type: models.CapabilityModerator}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/memberships/"+membershipID.String()+"/capabilities",
		map[string]string{"type": "moderator", "note": "nights"})
	rr := s.do(req)

	testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	testutil.AssertJSONContains(s.T(), rr, "type", "moderator")
}

func (s *MembershipHandlerSuite) TestGrantCapabilityUnknownType() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/memberships/"+id.NewMembershipID().String()+"/capabilities",
		map[string]string{"type": "janitor"})
	rr := s.do(req)
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
}

func (s *MembershipHandlerSuite) TestRevokePermission() {
	permissionID := id.NewPermissionID()
	s.service.EXPECT().RevokeSystemPermission(gomock.Any(), s.userID, permissionID).
		Return(nil, dErrors.New(dErrors.CodeConflict, "permission already revoked"))

	rr := s.do(testutil.NewRequest(s.T(), http.MethodDelete, "/permissions/"+permissionID.String()))

	testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
}

func (s *MembershipHandlerSuite) TestInternalErrorsAreNotLeaked() {
	s.service.EXPECT().ListMemberships(gomock.Any(), s.userID).
		Return(nil, dErrors.Wrap(io.ErrUnexpectedEOF, dErrors.CodeInternal, "failed to list memberships"))

	rr := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/me/memberships"))

	testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
	body := testutil.UnmarshalErrorResponse(s.T(), rr)
	assert.NotContains(s.T(), body, "error_description")
}

func (s *MembershipHandlerSuite) TestMissingUserIsInternal() {
	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/me/memberships"))
	testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
}
