package service

import (
	"time"

	"go.uber.org/mock/gomock"

	"agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/pagination"
)

func (s *MarketplaceSuite) feeInput(mode models.FeeMode, value string) models.FeeConfigInput {
	return models.FeeConfigInput{
		TerritoryID: s.territoryID,
		ItemType:    models.ItemTypeProduct,
		Mode:        mode,
		Value:       dec(value),
		Currency:    "brl",
		IsActive:    true,
	}
}

func (s *MarketplaceSuite) TestUpsertFeeConfigKeepsHistory() {
	s.allowFinance()

	first, err := s.feeService.UpsertFeeConfig(s.at(0), s.finance, s.feeInput(models.FeeModePercentage, "0.05"))
	s.Require().NoError(err)
	s.Equal("BRL", first.Currency)

	s.Run("identical input is a no-op", func() {
		same, err := s.feeService.UpsertFeeConfig(s.at(time.Minute), s.finance, s.feeInput(models.FeeModePercentage, "0.050"))
		s.Require().NoError(err)
		s.Equal(first.ID, same.ID)
	})

	second, err := s.feeService.UpsertFeeConfig(s.at(time.Hour), s.finance, s.feeInput(models.FeeModePercentage, "0.07"))
	s.Require().NoError(err)
	s.NotEqual(first.ID, second.ID)

	active, err := s.feeService.GetActive(s.ctx, s.territoryID, models.ItemTypeProduct)
	s.Require().NoError(err)
	s.Equal(second.ID, active.ID)

	history, err := s.fees.ListHistory(s.ctx, s.territoryID, models.ItemTypeProduct)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.False(history[0].IsActive)
	s.Require().NotNil(history[0].DeactivatedAt)
	s.True(history[1].IsActive)

	page, err := s.feeService.ListActivePaged(s.ctx, s.territoryID, pagination.Page{})
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
}

func (s *MarketplaceSuite) TestUpsertFeeConfigValidation() {
	cases := []struct {
		name  string
		input models.FeeConfigInput
	}{
		{"negative value", s.feeInput(models.FeeModeFixed, "-1")},
		{"percentage above one", s.feeInput(models.FeeModePercentage, "5")},
		{"long currency", func() models.FeeConfigInput {
			in := s.feeInput(models.FeeModeFixed, "1")
			in.Currency = "REAL"
			return in
		}()},
		{"missing territory", func() models.FeeConfigInput {
			in := s.feeInput(models.FeeModeFixed, "1")
			in.TerritoryID = id.TerritoryID{}
			return in
		}()},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.feeService.UpsertFeeConfig(s.ctx, s.finance, tc.input)
			s.requireCode(err, dErrors.CodeValidation)
		})
	}
}

func (s *MarketplaceSuite) TestUpsertFeeConfigRequiresFinance() {
	s.authz.EXPECT().RequireSystemPermission(gomock.Any(), s.buyer, membershipModels.PermissionPlatformFinance).
		Return(dErrors.New(dErrors.CodeForbidden, "permission required"))

	_, err := s.feeService.UpsertFeeConfig(s.ctx, s.buyer, s.feeInput(models.FeeModePercentage, "0.05"))
	s.requireCode(err, dErrors.CodeForbidden)

	_, err = s.feeService.GetActive(s.ctx, s.territoryID, models.ItemTypeProduct)
	s.requireCode(err, dErrors.CodeNotFound)
}
