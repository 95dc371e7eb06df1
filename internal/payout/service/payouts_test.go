package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	marketModels "agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	"agora/internal/payout/gateway"
	gatewayMocks "agora/internal/payout/gateway/mocks"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/pagination"
	"agora/pkg/platform/tx"
)

const day = 24 * time.Hour

func (s *PayoutSuite) TestProcessPaidCheckout() {
	s.seedConfig(nil)
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "100.00", "5.00", s.clock)

	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(seller, txn.SellerUserID)
	s.Equal(int64(10000), txn.GrossCents)
	s.Equal(int64(500), txn.FeeCents)
	s.Equal(int64(9500), txn.NetCents)
	s.Equal(models.TransactionPending, txn.Status)
	s.Equal(s.clock.Add(7*day), txn.ReadyForPayoutAt, "retention counts from the payment time")

	s.Equal(int64(9500), s.balance(seller).PendingCents)
	s.Equal(int64(500), s.platform().RevenueCents)
	revenue, err := s.ledger.ListRevenue(s.ctx, s.territoryID)
	s.Require().NoError(err)
	s.Require().Len(revenue, 1)
	s.Equal(c.ID, revenue[0].CheckoutID)
}

func (s *PayoutSuite) TestProcessPaidCheckoutIsIdempotent() {
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "40.00", "2.00", s.clock)

	for range 3 {
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
	}

	txs, err := s.transactions.ListBySeller(s.ctx, s.territoryID, seller)
	s.Require().NoError(err)
	s.Len(txs, 1)
	s.Equal(int64(3800), s.balance(seller).PendingCents)
	s.Equal(int64(200), s.platform().RevenueCents)
	s.requireConserved(seller)
}

func (s *PayoutSuite) TestProcessPaidCheckoutWithoutConfigHasNoRetention() {
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)

	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(s.clock, txn.ReadyForPayoutAt)
	_, err = s.balances.FindPlatform(s.ctx, s.territoryID, "BRL")
	s.Error(err, "a zero fee books no revenue")
}

func (s *PayoutSuite) TestProcessPaidCheckoutRejects() {
	seller := id.NewUserID()
	st := s.seedStore(seller)

	s.Run("unknown checkout", func() {
		err := s.payouts.ProcessPaidCheckout(s.ctx, id.NewCheckoutID())
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("checkout not paid", func() {
		c := s.seedPaidCheckout(st, "10.00", "0.50", s.clock)
		c.Status = marketModels.CheckoutAwaitingPayment
		c.PaidAt = nil
		s.Require().NoError(s.checkouts.Update(s.ctx, c))

		err := s.payouts.ProcessPaidCheckout(s.ctx, c.ID)
		s.requireCode(err, dErrors.CodeConflict)
	})

	s.Run("inconsistent amounts", func() {
		c := s.seedPaidCheckout(st, "10.00", "0.50", s.clock)
		c.Total = decimal.RequireFromString("12.00")
		s.Require().NoError(s.checkouts.Update(s.ctx, c))

		err := s.payouts.ProcessPaidCheckout(s.ctx, c.ID)
		s.requireCode(err, dErrors.CodeInvariantViolation)
	})

	s.Run("missing store", func() {
		orphan := &marketModels.Store{ID: id.NewStoreID(), TerritoryID: s.territoryID}
		c := s.seedPaidCheckout(orphan, "10.00", "0.50", s.clock)

		err := s.payouts.ProcessPaidCheckout(s.ctx, c.ID)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	txs, err := s.transactions.ListBySeller(s.ctx, s.territoryID, seller)
	s.Require().NoError(err)
	s.Empty(txs, "rejected checkouts leave no ledger rows")
}

func (s *PayoutSuite) TestProcessRefundedCheckout() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 1 })
	seller := id.NewUserID()
	st := s.seedStore(seller)
	kept := s.seedPaidCheckout(st, "30.00", "1.50", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, kept.ID))

	s.Run("pending earnings are voided", func() {
		c := s.seedPaidCheckout(st, "20.00", "1.00", s.clock)
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
		s.Equal(int64(250), s.platform().RevenueCents)

		s.Require().NoError(s.payouts.ProcessRefundedCheckout(s.ctx, c.ID))
		txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.TransactionVoided, txn.Status)
		s.Equal(int64(2850), s.balance(seller).PendingCents)
		s.Equal(int64(150), s.platform().RevenueCents)
		s.requireConserved(seller)

		revenue, err := s.ledger.ListRevenue(s.ctx, s.territoryID)
		s.Require().NoError(err)
		reversed := 0
		for _, e := range revenue {
			if e.IsReversed() {
				reversed++
				s.Equal(c.ID, e.CheckoutID)
			}
		}
		s.Equal(1, reversed)

		s.Require().NoError(s.payouts.ProcessRefundedCheckout(s.ctx, c.ID), "voiding twice is a no-op")
		s.Equal(int64(150), s.platform().RevenueCents)
	})

	s.Run("ready earnings are voided and never paid", func() {
		c := s.seedPaidCheckout(st, "10.00", "0", s.clock)
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
		promoted, err := s.payouts.promoteDue(s.at(day), s.territoryID, s.clock.Add(day))
		s.Require().NoError(err)
		s.Equal(2, promoted)
		s.Equal(int64(3850), s.balance(seller).ReadyCents)

		s.Require().NoError(s.payouts.ProcessRefundedCheckout(s.at(day), c.ID))
		b := s.balance(seller)
		s.Equal(int64(2850), b.ReadyCents)
		s.Zero(b.PendingCents)
		s.requireConserved(seller)

		n, err := s.payouts.ProcessPendingPayouts(s.at(day+time.Hour), s.territoryID, s.finance)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(int64(2850), s.balance(seller).PaidCents, "only the kept checkout is paid out")
		s.requireConserved(seller)
	})

	s.Run("paid out earnings cannot be voided", func() {
		err := s.payouts.ProcessRefundedCheckout(s.ctx, kept.ID)
		s.requireCode(err, dErrors.CodeConflict)
		txn, err := s.transactions.FindByCheckout(s.ctx, kept.ID)
		s.Require().NoError(err)
		s.Equal(models.TransactionPaid, txn.Status)
		s.Equal(int64(2850), s.balance(seller).PaidCents)
		s.Equal(int64(150), s.platform().RevenueCents)
	})

	s.Run("checkout without earnings is a no-op", func() {
		s.Require().NoError(s.payouts.ProcessRefundedCheckout(s.ctx, id.NewCheckoutID()))
	})
}

func (s *PayoutSuite) TestProcessPendingPayouts() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.MinimumCents = 1000 })
	seller := id.NewUserID()
	st := s.seedStore(seller)
	first := s.seedPaidCheckout(st, "30.00", "1.50", s.clock)
	second := s.seedPaidCheckout(st, "20.00", "1.00", s.clock.Add(time.Hour))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, first.ID))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, second.ID))

	s.Run("nothing is due inside the retention period", func() {
		n, err := s.payouts.ProcessPendingPayouts(s.at(6*day), s.territoryID, s.finance)
		s.Require().NoError(err)
		s.Zero(n)
		s.Empty(s.gateway.Payouts())
	})

	s.Run("due transactions are promoted and paid in one payout", func() {
		n, err := s.payouts.ProcessPendingPayouts(s.at(8*day), s.territoryID, s.finance)
		s.Require().NoError(err)
		s.Equal(1, n)

		sent := s.gateway.Payouts()
		s.Require().Len(sent, 1)
		s.Equal(int64(4750), sent[0].AmountCents)
		s.Equal(seller, sent[0].SellerUserID)

		b := s.balance(seller)
		s.Zero(b.PendingCents)
		s.Zero(b.ReadyCents)
		s.Equal(int64(4750), b.PaidCents)
		s.Require().NotNil(b.LastPayoutAt)
		s.Equal(int64(4750), s.platform().ExpensesCents)
		s.requireConserved(seller)

		txn, err := s.transactions.FindByCheckout(s.ctx, first.ID)
		s.Require().NoError(err)
		s.Equal(models.TransactionPaid, txn.Status)
		s.NotEmpty(txn.PayoutID)
	})
}

func (s *PayoutSuite) TestProcessPendingPayoutsNoConfig() {
	s.allowFinance()

	n, err := s.payouts.ProcessPendingPayouts(s.ctx, s.territoryID, s.finance)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *PayoutSuite) TestProcessPendingPayoutsDisabled() {
	s.authz.EXPECT().
		RequireCapability(gomock.Any(), s.finance, gomock.Any(), membershipModels.CapabilityFinancialManager).
		Return(nil).AnyTimes()
	tests := map[string]func(*models.TerritoryPayoutConfig){
		"auto payout off":  func(c *models.TerritoryPayoutConfig) { c.AutoPayoutEnabled = false },
		"manual frequency": func(c *models.TerritoryPayoutConfig) { c.Frequency = models.FrequencyManual },
	}
	for name, mutate := range tests {
		s.Run(name, func() {
			s.territoryID = id.NewTerritoryID()
			s.seedConfig(func(c *models.TerritoryPayoutConfig) {
				c.RetentionDays = 0
				mutate(c)
			})
			seller := id.NewUserID()
			c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)
			s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

			n, err := s.payouts.ProcessPendingPayouts(s.at(day), s.territoryID, s.finance)
			s.Require().NoError(err)
			s.Zero(n)
			s.Equal(int64(1000), s.balance(seller).PendingCents, "nothing moves while payouts are off")
		})
	}
}

func (s *PayoutSuite) TestProcessPendingPayoutsRequiresApproval() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0; c.RequiresApproval = true })
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	n, err := s.payouts.ProcessPendingPayouts(s.at(time.Minute), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.Zero(n)
	s.Empty(s.gateway.Payouts())
	s.Equal(int64(1000), s.balance(seller).ReadyCents)
	s.requireConserved(seller)
}

func (s *PayoutSuite) TestProcessPendingPayoutsBounds() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) {
		c.RetentionDays = 0
		c.MinimumCents = 1500
		c.MaximumCents = ptr(int64(2500))
	})
	small := id.NewUserID()
	capped := id.NewUserID()
	smallStore := s.seedStore(small)
	cappedStore := s.seedStore(capped)
	for i, amount := range []string{"10.00", "10.00", "10.00"} {
		c := s.seedPaidCheckout(cappedStore, amount, "0", s.clock.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
	}
	c := s.seedPaidCheckout(smallStore, "10.00", "0", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	n, err := s.payouts.ProcessPendingPayouts(s.at(time.Hour), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.Equal(1, n)

	s.Equal(int64(1000), s.balance(small).ReadyCents, "below the minimum stays ready")
	b := s.balance(capped)
	s.Equal(int64(2000), b.PaidCents, "the two oldest fit under the maximum")
	s.Equal(int64(1000), b.ReadyCents)
	s.requireConserved(small)
	s.requireConserved(capped)

	s.Run("daily frequency holds the rest until tomorrow", func() {
		n, err := s.payouts.ProcessPendingPayouts(s.at(2*time.Hour), s.territoryID, s.finance)
		s.Require().NoError(err)
		s.Zero(n)
	})
}

func (s *PayoutSuite) TestProcessPendingPayoutsPaysOversizeTransactionAlone() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) {
		c.RetentionDays = 0
		c.MaximumCents = ptr(int64(5000))
	})
	seller := id.NewUserID()
	st := s.seedStore(seller)
	large := s.seedPaidCheckout(st, "100.00", "0", s.clock)
	small := s.seedPaidCheckout(st, "10.00", "0", s.clock.Add(time.Minute))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, large.ID))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, small.ID))

	n, err := s.payouts.ProcessPendingPayouts(s.at(time.Hour), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.Equal(1, n)
	b := s.balance(seller)
	s.Equal(int64(10000), b.PaidCents, "the oldest transaction goes out on its own")
	s.Equal(int64(1000), b.ReadyCents)
	s.requireConserved(seller)

	n, err = s.payouts.ProcessPendingPayouts(s.at(2*day), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.Equal(1, n)
	b = s.balance(seller)
	s.Equal(int64(11000), b.PaidCents)
	s.Zero(b.ReadyCents)
	s.requireConserved(seller)
}

func (s *PayoutSuite) TestProcessPendingPayoutsGatewayFailure() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0 })
	failing := id.NewUserID()
	healthy := id.NewUserID()
	first := s.seedPaidCheckout(s.seedStore(failing), "10.00", "0", s.clock)
	second := s.seedPaidCheckout(s.seedStore(healthy), "20.00", "0", s.clock.Add(time.Minute))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, first.ID))
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, second.ID))
	s.gateway.FailNext(1, gateway.NewError(gateway.CategoryProviderOutage, "initiate payout", "down", nil))

	n, err := s.payouts.ProcessPendingPayouts(s.at(time.Hour), s.territoryID, s.finance)
	s.Equal(1, n, "other sellers proceed")
	s.requireCode(err, dErrors.CodeUnavailable)
	s.True(dErrors.IsRetryable(err))
	s.Contains(err.Error(), failing.String())

	s.Equal(int64(1000), s.balance(failing).ReadyCents)
	s.Equal(int64(2000), s.balance(healthy).PaidCents)
	s.requireConserved(failing)

	s.Run("retry pays the failed seller", func() {
		n, err := s.payouts.ProcessPendingPayouts(s.at(2*time.Hour), s.territoryID, s.finance)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(int64(1000), s.balance(failing).PaidCents)
	})
}

func (s *PayoutSuite) TestProcessPendingPayoutsRequiresFinancialManager() {
	outsider := id.NewUserID()
	s.authz.EXPECT().
		RequireCapability(gomock.Any(), outsider, s.territoryID, membershipModels.CapabilityFinancialManager).
		Return(dErrors.New(dErrors.CodeForbidden, "financial_manager capability required"))

	_, err := s.payouts.ProcessPendingPayouts(s.ctx, s.territoryID, outsider)
	s.requireCode(err, dErrors.CodeForbidden)
}

func (s *PayoutSuite) TestRunScheduled() {
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0 })
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	n, err := s.payouts.RunScheduled(s.at(time.Hour))
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(int64(1000), s.balance(seller).PaidCents)
}

func (s *PayoutSuite) TestUpdatePayoutStatus() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0 })
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "50.00", "2.50", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
	_, err := s.payouts.ProcessPendingPayouts(s.at(time.Hour), s.territoryID, s.finance)
	s.Require().NoError(err)
	txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
	s.Require().NoError(err)
	payoutID := txn.PayoutID

	s.Run("pending is a no-op", func() {
		status, err := s.payouts.UpdatePayoutStatus(s.ctx, s.finance, payoutID)
		s.Require().NoError(err)
		s.Equal(gateway.StatusPending, status)
		s.Equal(int64(4750), s.balance(seller).PaidCents)
	})

	s.Run("gateway error mutates nothing", func() {
		s.gateway.FailNext(1, gateway.NewError(gateway.CategoryTimeout, "get payout status", "slow", nil))
		_, err := s.payouts.UpdatePayoutStatus(s.ctx, s.finance, payoutID)
		s.requireCode(err, dErrors.CodeTimeout)
		s.True(dErrors.IsRetryable(err))

		txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.TransactionPaid, txn.Status)
		b := s.balance(seller)
		s.Equal(int64(4750), b.PaidCents)
		s.Zero(b.ReadyCents)
		s.Equal(int64(4750), s.platform().ExpensesCents)
		s.requireConserved(seller)
	})

	s.Run("failed reverts the payout", func() {
		s.Require().NoError(s.gateway.SetStatus(payoutID, gateway.StatusFailed))
		status, err := s.payouts.UpdatePayoutStatus(s.at(2*time.Hour), s.finance, payoutID)
		s.Require().NoError(err)
		s.Equal(gateway.StatusFailed, status)

		b := s.balance(seller)
		s.Zero(b.PaidCents)
		s.Equal(int64(4750), b.ReadyCents)
		s.Zero(s.platform().ExpensesCents)
		s.requireConserved(seller)

		expenses, err := s.ledger.ListExpensesByPayout(s.ctx, payoutID)
		s.Require().NoError(err)
		s.Require().Len(expenses, 1)
		s.True(expenses[0].IsReversed())
	})

	s.Run("asking again reports the reversal", func() {
		status, err := s.payouts.UpdatePayoutStatus(s.ctx, s.finance, payoutID)
		s.Require().NoError(err)
		s.Equal(gateway.StatusFailed, status)
	})
}

func (s *PayoutSuite) TestUpdatePayoutStatusUnknownPayout() {
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0 })
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))

	_, err := s.payouts.UpdatePayoutStatus(s.ctx, s.finance, "po_missing")
	s.requireCode(err, dErrors.CodeNotFound)
	s.Equal(int64(1000), s.balance(seller).Total(), "other ledgers are untouched")
	s.Zero(s.balance(seller).PaidCents)
}

func (s *PayoutSuite) TestUpdatePayoutStatusCircuitOpen() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 0 })
	seller := id.NewUserID()
	c := s.seedPaidCheckout(s.seedStore(seller), "10.00", "0", s.clock)
	s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
	_, err := s.payouts.ProcessPendingPayouts(s.at(time.Hour), s.territoryID, s.finance)
	s.Require().NoError(err)
	txn, err := s.transactions.FindByCheckout(s.ctx, c.ID)
	s.Require().NoError(err)

	gw := gatewayMocks.NewMockGateway(gomock.NewController(s.T()))
	gw.EXPECT().GetPayoutStatus(gomock.Any(), txn.PayoutID).
		Return(gateway.PayoutStatus(""), gateway.NewError(gateway.CategoryCircuitOpen, "get payout status", "open", nil))
	svc, err := NewSellerPayoutService(SellerPayoutDeps{
		Transactions: s.transactions,
		Balances:     s.balances,
		Ledger:       s.ledger,
		Configs:      s.configs,
		Checkouts:    s.checkouts,
		Stores:       s.stores,
		Gateway:      gw,
		Authz:        s.authz,
		Tx:           tx.NewInMemoryRunner(),
	})
	s.Require().NoError(err)

	_, err = svc.UpdatePayoutStatus(s.ctx, s.finance, txn.PayoutID)
	s.requireCode(err, dErrors.CodeUnavailable)
	s.Equal(int64(1000), s.balance(seller).PaidCents)
}

func (s *PayoutSuite) TestBalanceConservationAcrossLifecycle() {
	s.allowFinance()
	s.seedConfig(func(c *models.TerritoryPayoutConfig) { c.RetentionDays = 1 })
	seller := id.NewUserID()
	st := s.seedStore(seller)
	amounts := []struct{ subtotal, fee string }{{"12.34", "0.62"}, {"99.99", "5.00"}, {"0.10", "0.01"}}
	for i, a := range amounts {
		c := s.seedPaidCheckout(st, a.subtotal, a.fee, s.clock.Add(time.Duration(i)*day))
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.ctx, c.ID))
		s.requireConserved(seller)
	}

	_, err := s.payouts.ProcessPendingPayouts(s.at(day+time.Hour), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.requireConserved(seller)

	_, err = s.payouts.ProcessPendingPayouts(s.at(5*day), s.territoryID, s.finance)
	s.Require().NoError(err)
	s.requireConserved(seller)

	b := s.balance(seller)
	s.Equal(int64(1172+9499+9), b.PaidCents)
	p := s.platform()
	s.Equal(int64(62+500+1), p.RevenueCents)
	s.Equal(b.PaidCents, p.ExpensesCents)
}

func (s *PayoutSuite) TestSellerViews() {
	s.seedConfig(nil)
	seller := id.NewUserID()
	st := s.seedStore(seller)
	for i := range 3 {
		c := s.seedPaidCheckout(st, "10.00", "0", s.clock.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.payouts.ProcessPaidCheckout(s.at(time.Duration(i)*time.Minute), c.ID))
	}

	s.Run("seller reads own balance", func() {
		balances, err := s.payouts.GetSellerBalances(s.ctx, seller, s.territoryID, seller)
		s.Require().NoError(err)
		s.Require().Len(balances, 1)
		s.Equal(int64(3000), balances[0].PendingCents)
	})

	s.Run("seller pages own transactions newest first", func() {
		res, err := s.payouts.ListSellerTransactions(s.ctx, seller, s.territoryID, seller, pagination.Page{Number: 1, Size: 2})
		s.Require().NoError(err)
		s.Equal(3, res.TotalCount)
		s.Require().Len(res.Items, 2)
		s.True(res.Items[0].ReadyForPayoutAt.After(res.Items[1].ReadyForPayoutAt))
	})

	s.Run("others need the financial manager capability", func() {
		other := id.NewUserID()
		s.authz.EXPECT().
			RequireCapability(gomock.Any(), other, s.territoryID, membershipModels.CapabilityFinancialManager).
			Return(dErrors.New(dErrors.CodeForbidden, "financial_manager capability required"))
		_, err := s.payouts.GetSellerBalances(s.ctx, other, s.territoryID, seller)
		s.requireCode(err, dErrors.CodeForbidden)
	})
}

func (s *PayoutSuite) TestNewSellerPayoutServiceRequiresDeps() {
	_, err := NewSellerPayoutService(SellerPayoutDeps{})
	s.Require().Error(err)
}
