package service

import (
	"time"

	"go.uber.org/mock/gomock"

	membershipModels "agora/internal/membership/models"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/pagination"
)

func (s *PayoutSuite) configInput() models.PayoutConfigInput {
	return models.PayoutConfigInput{
		TerritoryID:       s.territoryID,
		RetentionDays:     14,
		MinimumCents:      5000,
		MaximumCents:      ptr(int64(100000)),
		Frequency:         models.FrequencyWeekly,
		AutoPayoutEnabled: true,
		Currency:          " brl ",
	}
}

func (s *PayoutSuite) TestUpsertConfigKeepsHistory() {
	s.allowFinance()

	first, err := s.configService.UpsertConfig(s.ctx, s.finance, s.configInput())
	s.Require().NoError(err)
	s.Equal("BRL", first.Currency)
	s.True(first.IsActive)

	s.Run("identical input is a no-op", func() {
		again, err := s.configService.UpsertConfig(s.at(time.Second), s.finance, s.configInput())
		s.Require().NoError(err)
		s.Equal(first.ID, again.ID)
	})

	s.Run("a change deactivates the previous row", func() {
		in := s.configInput()
		in.RetentionDays = 3
		next, err := s.configService.UpsertConfig(s.at(2*time.Second), s.finance, in)
		s.Require().NoError(err)
		s.NotEqual(first.ID, next.ID)

		active, err := s.configService.GetActive(s.ctx, s.territoryID)
		s.Require().NoError(err)
		s.Equal(next.ID, active.ID)
		s.Equal(3, active.RetentionDays)

		history, err := s.configService.History(s.ctx, s.finance, s.territoryID)
		s.Require().NoError(err)
		s.Require().Len(history, 2)
		s.False(history[0].IsActive)
		s.True(history[1].IsActive)
	})
}

func (s *PayoutSuite) TestUpsertConfigValidation() {
	tests := []struct {
		name   string
		mutate func(*models.PayoutConfigInput)
	}{
		{"negative retention", func(in *models.PayoutConfigInput) { in.RetentionDays = -1 }},
		{"negative minimum", func(in *models.PayoutConfigInput) { in.MinimumCents = -1 }},
		{"maximum below minimum", func(in *models.PayoutConfigInput) { in.MaximumCents = ptr(int64(10)) }},
		{"unknown frequency", func(in *models.PayoutConfigInput) { in.Frequency = "hourly" }},
		{"missing currency", func(in *models.PayoutConfigInput) { in.Currency = " " }},
		{"long currency", func(in *models.PayoutConfigInput) { in.Currency = "REAL" }},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			in := s.configInput()
			tt.mutate(&in)
			_, err := s.configService.UpsertConfig(s.ctx, s.finance, in)
			s.requireCode(err, dErrors.CodeValidation)
		})
	}
}

func (s *PayoutSuite) TestUpsertConfigRequiresFinancialManager() {
	curator := id.NewUserID()
	s.authz.EXPECT().
		RequireCapability(gomock.Any(), curator, s.territoryID, membershipModels.CapabilityFinancialManager).
		Return(dErrors.New(dErrors.CodeForbidden, "financial_manager capability required"))

	_, err := s.configService.UpsertConfig(s.ctx, curator, s.configInput())
	s.requireCode(err, dErrors.CodeForbidden)

	_, err = s.configService.GetActive(s.ctx, s.territoryID)
	s.requireCode(err, dErrors.CodeNotFound)
}

func (s *PayoutSuite) TestListActivePaged() {
	s.authz.EXPECT().RequireCapability(gomock.Any(), s.finance, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	for range 3 {
		in := s.configInput()
		in.TerritoryID = id.NewTerritoryID()
		_, err := s.configService.UpsertConfig(s.ctx, s.finance, in)
		s.Require().NoError(err)
	}

	res, err := s.configService.ListActivePaged(s.ctx, pagination.Page{Number: 2, Size: 2})
	s.Require().NoError(err)
	s.Equal(3, res.TotalCount)
	s.Len(res.Items, 1)
}
