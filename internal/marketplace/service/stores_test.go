package service

import (
	"go.uber.org/mock/gomock"

	"agora/internal/marketplace/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

func (s *MarketplaceSuite) TestCreateStore() {
	s.Run("verified resident", func() {
		s.rules.EXPECT().CanCreateStore(gomock.Any(), s.seller, s.territoryID).Return(true, nil)
		st, err := s.storeService.CreateStore(s.ctx, s.seller, s.territoryID, "  Horta Comunitária ")
		s.Require().NoError(err)
		s.Equal("Horta Comunitária", st.Name)
		s.Equal(s.seller, st.OwnerUserID)
	})

	s.Run("unverified user", func() {
		s.rules.EXPECT().CanCreateStore(gomock.Any(), s.buyer, s.territoryID).Return(false, nil)
		_, err := s.storeService.CreateStore(s.ctx, s.buyer, s.territoryID, "Banca")
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("rules unavailable", func() {
		s.rules.EXPECT().CanCreateStore(gomock.Any(), s.buyer, s.territoryID).
			Return(false, dErrors.New(dErrors.CodeUnavailable, "membership lookup failed"))
		_, err := s.storeService.CreateStore(s.ctx, s.buyer, s.territoryID, "Banca")
		s.requireCode(err, dErrors.CodeUnavailable)
	})

	s.Run("marketplace disabled", func() {
		_, err := s.storeService.CreateStore(s.ctx, s.seller, id.NewTerritoryID(), "Banca")
		s.requireCode(err, dErrors.CodeFeatureDisabled)
	})
}

func (s *MarketplaceSuite) TestCreateItem() {
	st := s.seedStore(s.seller)

	s.Run("inquiry items carry no price", func() {
		s.rules.EXPECT().CanCreateItem(gomock.Any(), s.seller, s.territoryID).Return(true, nil)
		item, err := s.storeService.CreateItem(s.ctx, s.seller, st.ID, models.NewItemInput{
			Title:       "Custom furniture",
			ItemType:    models.ItemTypeService,
			PricingType: models.PricingInquiry,
			Price:       dec("99"),
			Currency:    "BRL",
		})
		s.Require().NoError(err)
		s.True(item.Price.IsZero())
		s.Empty(item.Currency)
		s.Equal(models.ItemActive, item.Status)
	})

	s.Run("only the owner adds items", func() {
		_, err := s.storeService.CreateItem(s.ctx, s.buyer, st.ID, models.NewItemInput{
			Title:       "Jam",
			ItemType:    models.ItemTypeProduct,
			PricingType: models.PricingFixed,
			Price:       dec("12"),
			Currency:    "BRL",
		})
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("fixed price needs a currency", func() {
		_, err := s.storeService.CreateItem(s.ctx, s.seller, st.ID, models.NewItemInput{
			Title:       "Jam",
			ItemType:    models.ItemTypeProduct,
			PricingType: models.PricingFixed,
			Price:       dec("12"),
		})
		s.requireCode(err, dErrors.CodeValidation)
	})
}

func (s *MarketplaceSuite) TestListInquiriesIsOwnerOnly() {
	st := s.seedStore(s.seller)

	_, err := s.storeService.ListInquiries(s.ctx, s.buyer, st.ID)
	s.requireCode(err, dErrors.CodeForbidden)

	inqs, err := s.storeService.ListInquiries(s.ctx, s.seller, st.ID)
	s.Require().NoError(err)
	s.Empty(inqs)
}
