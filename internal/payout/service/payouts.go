package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	marketModels "agora/internal/marketplace/models"
	membershipModels "agora/internal/membership/models"
	"agora/internal/payout/gateway"
	"agora/internal/payout/models"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/money"
	"agora/pkg/platform/pagination"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

// payoutNamespace seeds deterministic payout references, so a batch retried
// after a lost response reuses its idempotency key.
var payoutNamespace = uuid.MustParse("6f1c3c2e-4a0b-4c1e-9d55-0e7a0b6c2f10")

// SellerPayoutService records what paid checkouts owe sellers and pays them
// out in batches.
type SellerPayoutService struct {
	transactions TransactionRepository
	balances     BalanceRepository
	ledger       LedgerRepository
	configs      PayoutConfigRepository
	checkouts    CheckoutReader
	stores       StoreReader
	gateway      gateway.Gateway
	authz        Authorizer
	tx           tx.Runner
	options
}

// SellerPayoutDeps groups the collaborators of SellerPayoutService.
type SellerPayoutDeps struct {
	Transactions TransactionRepository
	Balances     BalanceRepository
	Ledger       LedgerRepository
	Configs      PayoutConfigRepository
	Checkouts    CheckoutReader
	Stores       StoreReader
	Gateway      gateway.Gateway
	Authz        Authorizer
	Tx           tx.Runner
}

func NewSellerPayoutService(deps SellerPayoutDeps, opts ...Option) (*SellerPayoutService, error) {
	switch {
	case deps.Transactions == nil:
		return nil, errors.New("seller transaction repository is required")
	case deps.Balances == nil:
		return nil, errors.New("balance repository is required")
	case deps.Ledger == nil:
		return nil, errors.New("ledger repository is required")
	case deps.Configs == nil:
		return nil, errors.New("payout config repository is required")
	case deps.Checkouts == nil:
		return nil, errors.New("checkout reader is required")
	case deps.Stores == nil:
		return nil, errors.New("store reader is required")
	case deps.Gateway == nil:
		return nil, errors.New("payout gateway is required")
	case deps.Authz == nil:
		return nil, errors.New("authorizer is required")
	case deps.Tx == nil:
		return nil, errors.New("transaction runner is required")
	}
	return &SellerPayoutService{
		transactions: deps.Transactions,
		balances:     deps.Balances,
		ledger:       deps.Ledger,
		configs:      deps.Configs,
		checkouts:    deps.Checkouts,
		stores:       deps.Stores,
		gateway:      deps.Gateway,
		authz:        deps.Authz,
		tx:           deps.Tx,
		options:      newOptions(opts),
	}, nil
}

// ProcessPaidCheckout records the seller transaction of a paid checkout,
// credits the seller's pending bucket and books the platform fee. Processing
// the same checkout again is a no-op.
func (s *SellerPayoutService) ProcessPaidCheckout(ctx context.Context, checkoutID id.CheckoutID) error {
	var (
		created   *models.SellerTransaction
		duplicate bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.transactions.FindByCheckout(ctx, checkoutID)
		switch {
		case err == nil:
			duplicate = true
			return nil
		case !errors.Is(err, sentinel.ErrNotFound):
			return translate(err, "", "failed to load seller transaction")
		}

		checkout, err := s.checkouts.FindByID(ctx, checkoutID)
		if err != nil {
			return translate(err, "checkout not found", "failed to load checkout")
		}
		if checkout.Status != marketModels.CheckoutPaid {
			return dErrors.Newf(dErrors.CodeConflict, "checkout is %s, expected %s", checkout.Status, marketModels.CheckoutPaid)
		}
		if err := checkAmounts(checkout); err != nil {
			return err
		}
		store, err := s.stores.FindByID(ctx, checkout.StoreID)
		if err != nil {
			return translate(err, "store not found", "failed to load store")
		}

		now := requestcontext.Now(ctx)
		paidAt := now
		if checkout.PaidAt != nil {
			paidAt = *checkout.PaidAt
		}
		var retention time.Duration
		cfg, err := s.configs.FindActive(ctx, checkout.TerritoryID)
		switch {
		case err == nil:
			retention = cfg.Retention()
		case !errors.Is(err, sentinel.ErrNotFound):
			return translate(err, "", "failed to load payout config")
		}

		gross := money.ToCents(checkout.ItemsSubtotal)
		fee := money.ToCents(checkout.PlatformFee)
		txn := &models.SellerTransaction{
			ID:               id.NewSellerTransactionID(),
			TerritoryID:      checkout.TerritoryID,
			SellerUserID:     store.OwnerUserID,
			StoreID:          store.ID,
			CheckoutID:       checkout.ID,
			GrossCents:       gross,
			FeeCents:         fee,
			NetCents:         gross - fee,
			Currency:         checkout.Currency,
			Status:           models.TransactionPending,
			ReadyForPayoutAt: paidAt.Add(retention),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.transactions.Create(ctx, txn); err != nil {
			return err
		}

		balance, err := s.sellerBalance(ctx, txn.TerritoryID, txn.SellerUserID, txn.Currency, now)
		if err != nil {
			return err
		}
		balance.AddPending(txn.NetCents, now)
		if err := s.balances.SaveSeller(ctx, balance); err != nil {
			return translate(err, "", "failed to save seller balance")
		}

		if fee > 0 {
			entry := &models.RevenueEntry{
				ID:          id.NewLedgerEntryID(),
				TerritoryID: txn.TerritoryID,
				CheckoutID:  txn.CheckoutID,
				AmountCents: fee,
				Currency:    txn.Currency,
				CreatedAt:   now,
			}
			if err := s.ledger.AddRevenue(ctx, entry); err != nil {
				return translate(err, "", "failed to record platform revenue")
			}
			if err := s.adjustPlatform(ctx, txn.TerritoryID, txn.Currency, fee, 0, now); err != nil {
				return err
			}
		}
		created = txn
		return nil
	})
	// A concurrent call won the unique checkout constraint.
	if errors.Is(err, sentinel.ErrConflict) {
		duplicate, err = true, nil
	}
	if err != nil {
		return translate(err, "", "failed to record seller transaction")
	}
	if duplicate {
		s.logger.DebugContext(ctx, "paid checkout already processed", "checkout_id", checkoutID)
		return nil
	}

	s.metrics.IncrementTransactions()
	s.logger.InfoContext(ctx, "seller_transaction_recorded",
		"seller_transaction_id", created.ID,
		"checkout_id", created.CheckoutID,
		"territory_id", created.TerritoryID,
		"seller_user_id", created.SellerUserID,
		"net_cents", created.NetCents,
		"fee_cents", created.FeeCents,
		"currency", created.Currency,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// ProcessRefundedCheckout voids the seller transaction of a refunded checkout
// before it is paid out: the net leaves the seller's pending or ready bucket
// and the platform fee revenue is reversed. A checkout without a transaction
// or one already voided is a no-op. A paid out transaction is CodeConflict.
func (s *SellerPayoutService) ProcessRefundedCheckout(ctx context.Context, checkoutID id.CheckoutID) error {
	var voided *models.SellerTransaction
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		txn, err := s.transactions.FindByCheckout(ctx, checkoutID)
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil
		case err != nil:
			return translate(err, "", "failed to load seller transaction")
		}
		switch txn.Status {
		case models.TransactionVoided:
			return nil
		case models.TransactionPaid:
			return dErrors.Newf(dErrors.CodeConflict, "seller transaction was already paid out in %s", txn.PayoutID)
		}

		now := requestcontext.Now(ctx)
		balance, err := s.sellerBalance(ctx, txn.TerritoryID, txn.SellerUserID, txn.Currency, now)
		if err != nil {
			return err
		}
		if err := balance.Void(txn.Status, txn.NetCents, now); err != nil {
			return err
		}
		if txn.FeeCents > 0 {
			if err := s.ledger.ReverseRevenue(ctx, checkoutID, now); err != nil {
				return translate(err, "", "failed to reverse platform revenue")
			}
			if err := s.adjustPlatform(ctx, txn.TerritoryID, txn.Currency, -txn.FeeCents, 0, now); err != nil {
				return err
			}
		}
		if err := s.balances.SaveSeller(ctx, balance); err != nil {
			return translate(err, "", "failed to save seller balance")
		}
		if err := s.transactions.MarkVoided(ctx, txn.ID, now); err != nil {
			return translate(err, "", "failed to void seller transaction")
		}
		voided = txn
		return nil
	})
	if err != nil {
		return err
	}
	if voided == nil {
		s.logger.DebugContext(ctx, "refunded checkout has nothing to void", "checkout_id", checkoutID)
		return nil
	}

	s.logger.InfoContext(ctx, "seller_transaction_voided",
		"seller_transaction_id", voided.ID,
		"checkout_id", checkoutID,
		"territory_id", voided.TerritoryID,
		"seller_user_id", voided.SellerUserID,
		"status", voided.Status,
		"net_cents", voided.NetCents,
		"fee_cents", voided.FeeCents,
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

func checkAmounts(c *marketModels.Checkout) error {
	if !c.ItemsSubtotal.IsPositive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "checkout has no items subtotal")
	}
	if c.PlatformFee.IsNegative() {
		return dErrors.New(dErrors.CodeInvariantViolation, "checkout has a negative platform fee")
	}
	if !c.Total.Equal(c.ItemsSubtotal.Add(c.PlatformFee)) {
		return dErrors.New(dErrors.CodeInvariantViolation, "checkout total does not equal subtotal plus fee")
	}
	if c.PlatformFee.GreaterThan(c.ItemsSubtotal) {
		return dErrors.New(dErrors.CodeInvariantViolation, "platform fee exceeds items subtotal")
	}
	return nil
}

// ProcessPendingPayouts runs one payout batch for the territory and returns
// how many payouts the gateway accepted. The actor needs the financial manager
// capability in the territory.
func (s *SellerPayoutService) ProcessPendingPayouts(ctx context.Context, territoryID id.TerritoryID, actorID id.UserID) (int, error) {
	if err := s.authz.RequireCapability(ctx, actorID, territoryID, membershipModels.CapabilityFinancialManager); err != nil {
		return 0, err
	}
	return s.processTerritory(ctx, territoryID)
}

// RunScheduled runs a batch for every territory with an active payout
// configuration.
func (s *SellerPayoutService) RunScheduled(ctx context.Context) (int, error) {
	configs, err := s.configs.ListActive(ctx, nil)
	if err != nil {
		return 0, translate(err, "", "failed to list payout configs")
	}
	var (
		total int
		errs  []error
	)
	for _, cfg := range configs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		n, err := s.processTerritory(ctx, cfg.TerritoryID)
		total += n
		if err != nil {
			errs = append(errs, fmt.Errorf("territory %s: %w", cfg.TerritoryID, err))
		}
	}
	return total, errors.Join(errs...)
}

func (s *SellerPayoutService) processTerritory(ctx context.Context, territoryID id.TerritoryID) (int, error) {
	cfg, err := s.configs.FindActive(ctx, territoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return 0, nil
		}
		return 0, translate(err, "", "failed to load payout config")
	}
	if !cfg.RunsAutomatically() {
		return 0, nil
	}

	now := requestcontext.Now(ctx)
	promoted, err := s.promoteDue(ctx, territoryID, now)
	if err != nil {
		return 0, err
	}
	if promoted > 0 {
		s.logger.InfoContext(ctx, "seller_transactions_ready", "territory_id", territoryID, "count", promoted)
	}
	if cfg.RequiresApproval {
		return 0, nil
	}

	ready, err := s.transactions.ListReady(ctx, territoryID)
	if err != nil {
		return 0, translate(err, "", "failed to list ready transactions")
	}
	var (
		processed int
		failed    []string
	)
	for _, batch := range groupBySeller(ready) {
		if batch[0].Currency != cfg.Currency {
			s.logger.WarnContext(ctx, "skipping seller transactions in foreign currency",
				"territory_id", territoryID,
				"seller_user_id", batch[0].SellerUserID,
				"currency", batch[0].Currency,
				"payout_currency", cfg.Currency,
			)
			continue
		}
		paid, err := s.paySeller(ctx, cfg, batch, now)
		if err != nil {
			if !dErrors.IsRetryable(err) {
				return processed, err
			}
			failed = append(failed, batch[0].SellerUserID.String())
			continue
		}
		if paid {
			processed++
		}
	}
	if len(failed) > 0 {
		return processed, dErrors.Newf(dErrors.CodeUnavailable, "payout gateway failed for sellers %s", strings.Join(failed, ", "))
	}
	return processed, nil
}

// promoteDue moves pending transactions whose retention elapsed to
// ReadyForPayout, shifting the matching balance buckets.
func (s *SellerPayoutService) promoteDue(ctx context.Context, territoryID id.TerritoryID, now time.Time) (int, error) {
	var count int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		due, err := s.transactions.ListDuePending(ctx, territoryID, now)
		if err != nil {
			return translate(err, "", "failed to list pending transactions")
		}
		if len(due) == 0 {
			return nil
		}
		for _, batch := range groupBySeller(due) {
			balance, err := s.sellerBalance(ctx, territoryID, batch[0].SellerUserID, batch[0].Currency, now)
			if err != nil {
				return err
			}
			if err := balance.Promote(sumNet(batch), now); err != nil {
				return err
			}
			if err := s.balances.SaveSeller(ctx, balance); err != nil {
				return translate(err, "", "failed to save seller balance")
			}
		}
		if err := s.transactions.MarkReady(ctx, transactionIDs(due), now); err != nil {
			return translate(err, "", "failed to promote transactions")
		}
		count = len(due)
		return nil
	})
	return count, err
}

// paySeller pays one seller's ready transactions, oldest first, within the
// configured bounds. It reports false when the seller is skipped this run.
func (s *SellerPayoutService) paySeller(ctx context.Context, cfg *models.TerritoryPayoutConfig, ready []*models.SellerTransaction, now time.Time) (bool, error) {
	seller := ready[0].SellerUserID
	balance, err := s.balances.FindSeller(ctx, cfg.TerritoryID, seller, cfg.Currency)
	if err != nil {
		return false, translate(err, "seller balance not found", "failed to load seller balance")
	}
	if !cfg.Due(balance.LastPayoutAt, now) {
		return false, nil
	}
	nets := make([]int64, len(ready))
	for i, t := range ready {
		nets[i] = t.NetCents
	}
	count, total := cfg.Selects(nets)
	if count == 0 {
		s.logger.WarnContext(ctx, "seller payout held back",
			"territory_id", cfg.TerritoryID,
			"seller_user_id", seller,
			"ready_cents", sumNet(ready),
			"minimum_cents", cfg.MinimumCents,
		)
		return false, nil
	}
	batch := ready[:count]
	if cfg.MaximumCents != nil && total > *cfg.MaximumCents {
		s.logger.WarnContext(ctx, "paying transaction above the payout maximum on its own",
			"territory_id", cfg.TerritoryID,
			"seller_user_id", seller,
			"transaction_id", batch[0].ID,
			"amount_cents", total,
			"maximum_cents", *cfg.MaximumCents,
		)
	}

	req := gateway.PayoutRequest{
		Reference:    payoutReference(batch),
		TerritoryID:  cfg.TerritoryID,
		SellerUserID: seller,
		AmountCents:  total,
		Currency:     cfg.Currency,
	}
	start := time.Now()
	res, err := s.gateway.InitiatePayout(ctx, req)
	s.metrics.ObserveGateway("initiate", time.Since(start))
	if err != nil {
		s.metrics.IncrementFailure(string(gateway.CategoryOf(err)))
		s.logger.WarnContext(ctx, "seller payout failed",
			"territory_id", cfg.TerritoryID,
			"seller_user_id", seller,
			"amount_cents", total,
			"reference", req.Reference,
			"error", err,
		)
		return false, gateway.ToDomain(err, "payout gateway unavailable")
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.transactions.MarkPaid(ctx, transactionIDs(batch), res.PayoutID, now); err != nil {
			return translate(err, "", "failed to mark transactions paid")
		}
		balance, err := s.sellerBalance(ctx, cfg.TerritoryID, seller, cfg.Currency, now)
		if err != nil {
			return err
		}
		if err := balance.Pay(total, now); err != nil {
			return err
		}
		if err := s.balances.SaveSeller(ctx, balance); err != nil {
			return translate(err, "", "failed to save seller balance")
		}
		expense := &models.ExpenseEntry{
			ID:           id.NewLedgerEntryID(),
			TerritoryID:  cfg.TerritoryID,
			SellerUserID: seller,
			PayoutID:     res.PayoutID,
			AmountCents:  total,
			Currency:     cfg.Currency,
			CreatedAt:    now,
		}
		if err := s.ledger.AddExpense(ctx, expense); err != nil {
			return translate(err, "", "failed to record platform expense")
		}
		return s.adjustPlatform(ctx, cfg.TerritoryID, cfg.Currency, 0, total, now)
	})
	if err != nil {
		// The provider accepted the payout; retrying with the same reference
		// returns the same payout.
		s.logger.ErrorContext(ctx, "failed to record accepted payout",
			"payout_id", res.PayoutID,
			"reference", req.Reference,
			"seller_user_id", seller,
			"error", err,
		)
		return false, err
	}

	s.metrics.RecordPayout(total)
	s.logger.InfoContext(ctx, "seller_payout_initiated",
		"payout_id", res.PayoutID,
		"territory_id", cfg.TerritoryID,
		"seller_user_id", seller,
		"amount_cents", total,
		"currency", cfg.Currency,
		"transactions", len(batch),
		"request_id", requestcontext.RequestID(ctx),
	)
	return true, nil
}

// UpdatePayoutStatus asks the gateway for a payout's status. A failed payout
// moves its transactions back to ReadyForPayout and reverses the expense.
// Gateway errors leave every record untouched.
func (s *SellerPayoutService) UpdatePayoutStatus(ctx context.Context, actorID id.UserID, payoutID string) (gateway.PayoutStatus, error) {
	txs, err := s.transactions.ListByPayout(ctx, payoutID)
	if err != nil {
		return "", translate(err, "", "failed to list payout transactions")
	}
	if len(txs) == 0 {
		return s.reversedStatus(ctx, actorID, payoutID)
	}
	territoryID := txs[0].TerritoryID
	if err := s.authz.RequireCapability(ctx, actorID, territoryID, membershipModels.CapabilityFinancialManager); err != nil {
		return "", err
	}

	start := time.Now()
	status, err := s.gateway.GetPayoutStatus(ctx, payoutID)
	s.metrics.ObserveGateway("status", time.Since(start))
	if err != nil {
		s.metrics.IncrementFailure(string(gateway.CategoryOf(err)))
		return "", gateway.ToDomain(err, "payout gateway unavailable")
	}
	if status != gateway.StatusFailed {
		return status, nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := requestcontext.Now(ctx)
		txs, err := s.transactions.ListByPayout(ctx, payoutID)
		if err != nil {
			return translate(err, "", "failed to list payout transactions")
		}
		if len(txs) == 0 {
			return nil
		}
		for _, batch := range groupBySeller(txs) {
			balance, err := s.sellerBalance(ctx, territoryID, batch[0].SellerUserID, batch[0].Currency, now)
			if err != nil {
				return err
			}
			if err := balance.Revert(sumNet(batch), now); err != nil {
				return err
			}
			if err := s.balances.SaveSeller(ctx, balance); err != nil {
				return translate(err, "", "failed to save seller balance")
			}
		}
		if err := s.transactions.MarkReady(ctx, transactionIDs(txs), now); err != nil {
			return translate(err, "", "failed to revert payout transactions")
		}

		expenses, err := s.ledger.ListExpensesByPayout(ctx, payoutID)
		if err != nil {
			return translate(err, "", "failed to list payout expenses")
		}
		for _, e := range expenses {
			if e.IsReversed() {
				continue
			}
			if err := s.ledger.ReverseExpense(ctx, e.ID, now); err != nil {
				return translate(err, "", "failed to reverse payout expense")
			}
			if err := s.adjustPlatform(ctx, e.TerritoryID, e.Currency, 0, -e.AmountCents, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.metrics.IncrementReversal()
	s.logger.WarnContext(ctx, "seller_payout_reversed",
		"payout_id", payoutID,
		"territory_id", territoryID,
		"transactions", len(txs),
		"actor_id", actorID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return status, nil
}

// reversedStatus answers for a payout whose transactions were already moved
// back by an earlier failed status.
func (s *SellerPayoutService) reversedStatus(ctx context.Context, actorID id.UserID, payoutID string) (gateway.PayoutStatus, error) {
	expenses, err := s.ledger.ListExpensesByPayout(ctx, payoutID)
	if err != nil {
		return "", translate(err, "", "failed to list payout expenses")
	}
	if len(expenses) == 0 {
		return "", dErrors.New(dErrors.CodeNotFound, "payout not found")
	}
	if err := s.authz.RequireCapability(ctx, actorID, expenses[0].TerritoryID, membershipModels.CapabilityFinancialManager); err != nil {
		return "", err
	}
	for _, e := range expenses {
		if !e.IsReversed() {
			return "", dErrors.New(dErrors.CodeInvariantViolation, "payout has expenses but no transactions")
		}
	}
	return gateway.StatusFailed, nil
}

// GetSellerBalances returns the seller's balance per currency. Sellers read
// their own; others need the financial manager capability.
func (s *SellerPayoutService) GetSellerBalances(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerBalance, error) {
	if err := s.requireSellerOrFinance(ctx, actorID, territoryID, sellerID); err != nil {
		return nil, err
	}
	balances, err := s.balances.ListSeller(ctx, territoryID, sellerID)
	if err != nil {
		return nil, translate(err, "", "failed to load seller balances")
	}
	return balances, nil
}

// ListSellerTransactions pages the seller's transactions, newest first.
func (s *SellerPayoutService) ListSellerTransactions(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, sellerID id.UserID, page pagination.Page) (pagination.Result[*models.SellerTransaction], error) {
	if err := s.requireSellerOrFinance(ctx, actorID, territoryID, sellerID); err != nil {
		return pagination.Result[*models.SellerTransaction]{}, err
	}
	all, err := s.transactions.ListBySeller(ctx, territoryID, sellerID)
	if err != nil {
		return pagination.Result[*models.SellerTransaction]{}, translate(err, "", "failed to list seller transactions")
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return pagination.Slice(all, page), nil
}

func (s *SellerPayoutService) requireSellerOrFinance(ctx context.Context, actorID id.UserID, territoryID id.TerritoryID, sellerID id.UserID) error {
	if actorID == sellerID {
		return nil
	}
	return s.authz.RequireCapability(ctx, actorID, territoryID, membershipModels.CapabilityFinancialManager)
}

func (s *SellerPayoutService) sellerBalance(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID, currency string, now time.Time) (*models.SellerBalance, error) {
	b, err := s.balances.FindSeller(ctx, territoryID, sellerID, currency)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return models.NewSellerBalance(territoryID, sellerID, currency, now), nil
	default:
		return nil, translate(err, "", "failed to load seller balance")
	}
}

func (s *SellerPayoutService) adjustPlatform(ctx context.Context, territoryID id.TerritoryID, currency string, revenue, expenses int64, now time.Time) error {
	b, err := s.balances.FindPlatform(ctx, territoryID, currency)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		b = models.NewPlatformBalance(territoryID, currency, now)
	case err != nil:
		return translate(err, "", "failed to load platform balance")
	}
	b.RevenueCents += revenue
	b.ExpensesCents += expenses
	b.UpdatedAt = now
	if err := s.balances.SavePlatform(ctx, b); err != nil {
		return translate(err, "", "failed to save platform balance")
	}
	return nil
}

// groupBySeller splits transactions into per-(seller, currency) runs, keeping
// the input order within and across groups.
func groupBySeller(txs []*models.SellerTransaction) [][]*models.SellerTransaction {
	type key struct {
		seller   id.UserID
		currency string
	}
	index := make(map[key]int)
	var groups [][]*models.SellerTransaction
	for _, t := range txs {
		k := key{t.SellerUserID, t.Currency}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], t)
	}
	return groups
}

func sumNet(txs []*models.SellerTransaction) int64 {
	var total int64
	for _, t := range txs {
		total += t.NetCents
	}
	return total
}

func transactionIDs(txs []*models.SellerTransaction) []id.SellerTransactionID {
	out := make([]id.SellerTransactionID, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func payoutReference(batch []*models.SellerTransaction) string {
	var b strings.Builder
	for _, t := range batch {
		b.WriteString(t.ID.String())
	}
	return uuid.NewSHA1(payoutNamespace, []byte(b.String())).String()
}
