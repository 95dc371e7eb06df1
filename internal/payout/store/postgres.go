package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"agora/internal/payout/models"
	"agora/internal/platform/postgres"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
)

// PostgresTransactions persists seller transactions. The unique checkout_id
// column backs one transaction per checkout.
type PostgresTransactions struct {
	db *sql.DB
}

func NewPostgresTransactions(db *sql.DB) *PostgresTransactions {
	return &PostgresTransactions{db: db}
}

const transactionColumns = `id, territory_id, seller_user_id, store_id, checkout_id, gross_cents, fee_cents, net_cents,
	currency, status, ready_for_payout_at, payout_id, paid_at, created_at, updated_at`

func (s *PostgresTransactions) Create(ctx context.Context, t *models.SellerTransaction) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO seller_transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, uuid.UUID(t.ID), uuid.UUID(t.TerritoryID), uuid.UUID(t.SellerUserID), uuid.UUID(t.StoreID), uuid.UUID(t.CheckoutID),
		t.GrossCents, t.FeeCents, t.NetCents, t.Currency, string(t.Status), t.ReadyForPayoutAt,
		nullString(t.PayoutID), nullTime(t.PaidAt), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create seller transaction: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create seller transaction: %w", err)
	}
	return nil
}

func (s *PostgresTransactions) FindByCheckout(ctx context.Context, checkoutID id.CheckoutID) (*models.SellerTransaction, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM seller_transactions WHERE checkout_id = $1`, uuid.UUID(checkoutID))
	return scanTransaction(row)
}

func (s *PostgresTransactions) ListByPayout(ctx context.Context, payoutID string) ([]*models.SellerTransaction, error) {
	return s.list(ctx, `WHERE payout_id = $1`, payoutID)
}

func (s *PostgresTransactions) ListDuePending(ctx context.Context, territoryID id.TerritoryID, now time.Time) ([]*models.SellerTransaction, error) {
	return s.list(ctx, `WHERE territory_id = $1 AND status = $2 AND ready_for_payout_at <= $3`,
		uuid.UUID(territoryID), string(models.TransactionPending), now)
}

func (s *PostgresTransactions) ListReady(ctx context.Context, territoryID id.TerritoryID) ([]*models.SellerTransaction, error) {
	return s.list(ctx, `WHERE territory_id = $1 AND status = $2`,
		uuid.UUID(territoryID), string(models.TransactionReadyForPayout))
}

func (s *PostgresTransactions) ListBySeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerTransaction, error) {
	return s.list(ctx, `WHERE territory_id = $1 AND seller_user_id = $2`,
		uuid.UUID(territoryID), uuid.UUID(sellerID))
}

func (s *PostgresTransactions) MarkReady(ctx context.Context, ids []id.SellerTransactionID, now time.Time) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE seller_transactions
		SET status = $2, payout_id = NULL, paid_at = NULL, updated_at = $3
		WHERE id = ANY($1::uuid[])
	`, pq.Array(idStrings(ids)), string(models.TransactionReadyForPayout), now)
	if err != nil {
		return fmt.Errorf("mark seller transactions ready: %w", err)
	}
	return requireRows(res, len(ids), "mark seller transactions ready")
}

func (s *PostgresTransactions) MarkPaid(ctx context.Context, ids []id.SellerTransactionID, payoutID string, paidAt time.Time) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE seller_transactions
		SET status = $2, payout_id = $3, paid_at = $4, updated_at = $4
		WHERE id = ANY($1::uuid[])
	`, pq.Array(idStrings(ids)), string(models.TransactionPaid), payoutID, paidAt)
	if err != nil {
		return fmt.Errorf("mark seller transactions paid: %w", err)
	}
	return requireRows(res, len(ids), "mark seller transactions paid")
}

func (s *PostgresTransactions) MarkVoided(ctx context.Context, txID id.SellerTransactionID, now time.Time) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE seller_transactions SET status = $2, updated_at = $3 WHERE id = $1
	`, uuid.UUID(txID), string(models.TransactionVoided), now)
	if err != nil {
		return fmt.Errorf("void seller transaction: %w", err)
	}
	return requireRows(res, 1, "void seller transaction")
}

func (s *PostgresTransactions) list(ctx context.Context, where string, args ...any) ([]*models.SellerTransaction, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM seller_transactions `+where+` ORDER BY ready_for_payout_at, created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list seller transactions: %w", err)
	}
	defer rows.Close()
	var out []*models.SellerTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// PostgresBalances persists seller and platform balances. Reads inside a
// transaction lock the row until commit.
type PostgresBalances struct {
	db *sql.DB
}

func NewPostgresBalances(db *sql.DB) *PostgresBalances {
	return &PostgresBalances{db: db}
}

const sellerBalanceColumns = `territory_id, seller_user_id, currency, pending_cents, ready_for_payout_cents, paid_cents, last_payout_at, updated_at`

func (s *PostgresBalances) FindSeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID, currency string) (*models.SellerBalance, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+sellerBalanceColumns+` FROM seller_balances
		WHERE territory_id = $1 AND seller_user_id = $2 AND currency = $3
		FOR UPDATE
	`, uuid.UUID(territoryID), uuid.UUID(sellerID), currency)
	return scanSellerBalance(row)
}

func (s *PostgresBalances) ListSeller(ctx context.Context, territoryID id.TerritoryID, sellerID id.UserID) ([]*models.SellerBalance, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT `+sellerBalanceColumns+` FROM seller_balances
		WHERE territory_id = $1 AND seller_user_id = $2
		ORDER BY currency
	`, uuid.UUID(territoryID), uuid.UUID(sellerID))
	if err != nil {
		return nil, fmt.Errorf("list seller balances: %w", err)
	}
	defer rows.Close()
	var out []*models.SellerBalance
	for rows.Next() {
		b, err := scanSellerBalance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresBalances) SaveSeller(ctx context.Context, b *models.SellerBalance) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO seller_balances (`+sellerBalanceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (territory_id, seller_user_id, currency) DO UPDATE SET
			pending_cents = EXCLUDED.pending_cents,
			ready_for_payout_cents = EXCLUDED.ready_for_payout_cents,
			paid_cents = EXCLUDED.paid_cents,
			last_payout_at = EXCLUDED.last_payout_at,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(b.TerritoryID), uuid.UUID(b.SellerUserID), b.Currency,
		b.PendingCents, b.ReadyCents, b.PaidCents, nullTime(b.LastPayoutAt), b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save seller balance: %w", err)
	}
	return nil
}

func (s *PostgresBalances) FindPlatform(ctx context.Context, territoryID id.TerritoryID, currency string) (*models.PlatformBalance, error) {
	var (
		b   models.PlatformBalance
		tID uuid.UUID
	)
	err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, `
		SELECT territory_id, currency, total_revenue_cents, total_expenses_cents, updated_at
		FROM platform_financial_balances
		WHERE territory_id = $1 AND currency = $2
		FOR UPDATE
	`, uuid.UUID(territoryID), currency).Scan(&tID, &b.Currency, &b.RevenueCents, &b.ExpensesCents, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find platform balance: %w", err)
	}
	b.TerritoryID = id.TerritoryID(tID)
	return &b, nil
}

func (s *PostgresBalances) SavePlatform(ctx context.Context, b *models.PlatformBalance) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO platform_financial_balances (territory_id, currency, total_revenue_cents, total_expenses_cents, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (territory_id, currency) DO UPDATE SET
			total_revenue_cents = EXCLUDED.total_revenue_cents,
			total_expenses_cents = EXCLUDED.total_expenses_cents,
			updated_at = EXCLUDED.updated_at
	`, uuid.UUID(b.TerritoryID), b.Currency, b.RevenueCents, b.ExpensesCents, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save platform balance: %w", err)
	}
	return nil
}

// PostgresLedger persists platform revenue and expense entries.
type PostgresLedger struct {
	db *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (s *PostgresLedger) AddRevenue(ctx context.Context, e *models.RevenueEntry) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO platform_revenue_transactions (id, territory_id, checkout_id, amount_cents, currency, reversed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(e.ID), uuid.UUID(e.TerritoryID), uuid.UUID(e.CheckoutID), e.AmountCents, e.Currency,
		nullTime(e.ReversedAt), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("add revenue entry: %w", err)
	}
	return nil
}

func (s *PostgresLedger) ListRevenue(ctx context.Context, territoryID id.TerritoryID) ([]*models.RevenueEntry, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT id, territory_id, checkout_id, amount_cents, currency, reversed_at, created_at
		FROM platform_revenue_transactions WHERE territory_id = $1 ORDER BY created_at
	`, uuid.UUID(territoryID))
	if err != nil {
		return nil, fmt.Errorf("list revenue entries: %w", err)
	}
	defer rows.Close()
	var out []*models.RevenueEntry
	for rows.Next() {
		var (
			e             models.RevenueEntry
			eID, tID, cID uuid.UUID
			reversedAt    sql.NullTime
		)
		if err := rows.Scan(&eID, &tID, &cID, &e.AmountCents, &e.Currency, &reversedAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revenue entry: %w", err)
		}
		e.ID, e.TerritoryID, e.CheckoutID = id.LedgerEntryID(eID), id.TerritoryID(tID), id.CheckoutID(cID)
		e.ReversedAt = timePtr(reversedAt)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *PostgresLedger) ReverseRevenue(ctx context.Context, checkoutID id.CheckoutID, at time.Time) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE platform_revenue_transactions SET reversed_at = $2
		WHERE checkout_id = $1 AND reversed_at IS NULL
	`, uuid.UUID(checkoutID), at)
	if err != nil {
		return fmt.Errorf("reverse revenue entry: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n > 0 {
		return err
	}
	var exists bool
	if err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM platform_revenue_transactions WHERE checkout_id = $1)`, uuid.UUID(checkoutID),
	).Scan(&exists); err != nil {
		return fmt.Errorf("reverse revenue entry: %w", err)
	}
	if exists {
		return fmt.Errorf("revenue already reversed: %w", sentinel.ErrConflict)
	}
	return fmt.Errorf("reverse revenue entry: %w", sentinel.ErrNotFound)
}

func (s *PostgresLedger) AddExpense(ctx context.Context, e *models.ExpenseEntry) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO platform_expense_transactions (id, territory_id, seller_user_id, payout_id, amount_cents, currency, reversed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.UUID(e.ID), uuid.UUID(e.TerritoryID), uuid.UUID(e.SellerUserID), e.PayoutID,
		e.AmountCents, e.Currency, nullTime(e.ReversedAt), e.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("add expense entry: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("add expense entry: %w", err)
	}
	return nil
}

func (s *PostgresLedger) ListExpensesByPayout(ctx context.Context, payoutID string) ([]*models.ExpenseEntry, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT id, territory_id, seller_user_id, payout_id, amount_cents, currency, reversed_at, created_at
		FROM platform_expense_transactions WHERE payout_id = $1 ORDER BY created_at
	`, payoutID)
	if err != nil {
		return nil, fmt.Errorf("list expense entries: %w", err)
	}
	defer rows.Close()
	var out []*models.ExpenseEntry
	for rows.Next() {
		var (
			e             models.ExpenseEntry
			eID, tID, uID uuid.UUID
			reversedAt    sql.NullTime
		)
		if err := rows.Scan(&eID, &tID, &uID, &e.PayoutID, &e.AmountCents, &e.Currency, &reversedAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense entry: %w", err)
		}
		e.ID, e.TerritoryID, e.SellerUserID = id.LedgerEntryID(eID), id.TerritoryID(tID), id.UserID(uID)
		e.ReversedAt = timePtr(reversedAt)
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *PostgresLedger) ReverseExpense(ctx context.Context, entryID id.LedgerEntryID, at time.Time) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE platform_expense_transactions SET reversed_at = $2
		WHERE id = $1 AND reversed_at IS NULL
	`, uuid.UUID(entryID), at)
	if err != nil {
		return fmt.Errorf("reverse expense entry: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 1 {
		return err
	}
	var exists bool
	if err := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM platform_expense_transactions WHERE id = $1)`, uuid.UUID(entryID),
	).Scan(&exists); err != nil {
		return fmt.Errorf("reverse expense entry: %w", err)
	}
	if exists {
		return fmt.Errorf("expense already reversed: %w", sentinel.ErrConflict)
	}
	return fmt.Errorf("reverse expense entry: %w", sentinel.ErrNotFound)
}

// PostgresPayoutConfigs persists payout configuration history. The partial
// unique index on active rows backs one active config per territory.
type PostgresPayoutConfigs struct {
	db *sql.DB
}

func NewPostgresPayoutConfigs(db *sql.DB) *PostgresPayoutConfigs {
	return &PostgresPayoutConfigs{db: db}
}

const payoutConfigColumns = `id, territory_id, retention_days, minimum_cents, maximum_cents, frequency,
	auto_payout_enabled, requires_approval, currency, is_active, created_at, created_by`

func (s *PostgresPayoutConfigs) Create(ctx context.Context, c *models.TerritoryPayoutConfig) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO territory_payout_configs (`+payoutConfigColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, uuid.UUID(c.ID), uuid.UUID(c.TerritoryID), c.RetentionDays, c.MinimumCents, postgres.NullInt64(c.MaximumCents),
		string(c.Frequency), c.AutoPayoutEnabled, c.RequiresApproval, c.Currency, c.IsActive, c.CreatedAt, uuid.UUID(c.CreatedBy))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create payout config: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create payout config: %w", err)
	}
	return nil
}

// Update only changes the active flag; every other column is history.
func (s *PostgresPayoutConfigs) Update(ctx context.Context, c *models.TerritoryPayoutConfig) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx,
		`UPDATE territory_payout_configs SET is_active = $2 WHERE id = $1`, uuid.UUID(c.ID), c.IsActive)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("update payout config: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("update payout config: %w", err)
	}
	return requireRows(res, 1, "update payout config")
}

func (s *PostgresPayoutConfigs) FindActive(ctx context.Context, territoryID id.TerritoryID) (*models.TerritoryPayoutConfig, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+payoutConfigColumns+` FROM territory_payout_configs WHERE territory_id = $1 AND is_active`,
		uuid.UUID(territoryID))
	return scanPayoutConfig(row)
}

func (s *PostgresPayoutConfigs) ListActive(ctx context.Context, territoryID *id.TerritoryID) ([]*models.TerritoryPayoutConfig, error) {
	var territory uuid.NullUUID
	if territoryID != nil {
		territory = uuid.NullUUID{UUID: uuid.UUID(*territoryID), Valid: true}
	}
	return s.list(ctx, `WHERE is_active AND ($1::uuid IS NULL OR territory_id = $1)`, territory)
}

func (s *PostgresPayoutConfigs) ListHistory(ctx context.Context, territoryID id.TerritoryID) ([]*models.TerritoryPayoutConfig, error) {
	return s.list(ctx, `WHERE territory_id = $1`, uuid.UUID(territoryID))
}

func (s *PostgresPayoutConfigs) list(ctx context.Context, where string, args ...any) ([]*models.TerritoryPayoutConfig, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx,
		`SELECT `+payoutConfigColumns+` FROM territory_payout_configs `+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list payout configs: %w", err)
	}
	defer rows.Close()
	var out []*models.TerritoryPayoutConfig
	for rows.Next() {
		c, err := scanPayoutConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*models.SellerTransaction, error) {
	var (
		t                            models.SellerTransaction
		tID, terrID, sID, stID, chID uuid.UUID
		status                       string
		payoutID                     sql.NullString
		paidAt                       sql.NullTime
	)
	err := row.Scan(&tID, &terrID, &sID, &stID, &chID, &t.GrossCents, &t.FeeCents, &t.NetCents,
		&t.Currency, &status, &t.ReadyForPayoutAt, &payoutID, &paidAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan seller transaction: %w", err)
	}
	t.ID = id.SellerTransactionID(tID)
	t.TerritoryID = id.TerritoryID(terrID)
	t.SellerUserID = id.UserID(sID)
	t.StoreID = id.StoreID(stID)
	t.CheckoutID = id.CheckoutID(chID)
	t.Status = models.TransactionStatus(status)
	t.PayoutID = payoutID.String
	t.PaidAt = timePtr(paidAt)
	return &t, nil
}

func scanSellerBalance(row scanner) (*models.SellerBalance, error) {
	var (
		b          models.SellerBalance
		tID, sID   uuid.UUID
		lastPayout sql.NullTime
	)
	err := row.Scan(&tID, &sID, &b.Currency, &b.PendingCents, &b.ReadyCents, &b.PaidCents, &lastPayout, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan seller balance: %w", err)
	}
	b.TerritoryID = id.TerritoryID(tID)
	b.SellerUserID = id.UserID(sID)
	b.LastPayoutAt = timePtr(lastPayout)
	return &b, nil
}

func scanPayoutConfig(row scanner) (*models.TerritoryPayoutConfig, error) {
	var (
		c                models.TerritoryPayoutConfig
		cID, tID, userID uuid.UUID
		maximum          sql.NullInt64
		frequency        string
	)
	err := row.Scan(&cID, &tID, &c.RetentionDays, &c.MinimumCents, &maximum, &frequency,
		&c.AutoPayoutEnabled, &c.RequiresApproval, &c.Currency, &c.IsActive, &c.CreatedAt, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan payout config: %w", err)
	}
	c.ID = id.PayoutConfigID(cID)
	c.TerritoryID = id.TerritoryID(tID)
	c.CreatedBy = id.UserID(userID)
	c.Frequency = models.PayoutFrequency(frequency)
	if maximum.Valid {
		v := maximum.Int64
		c.MaximumCents = &v
	}
	return &c, nil
}

func idStrings(ids []id.SellerTransactionID) []string {
	out := make([]string, len(ids))
	for i, v := range ids {
		out[i] = v.String()
	}
	return out
}

func requireRows(res sql.Result, want int, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n != int64(want) {
		return fmt.Errorf("%s: %d of %d rows: %w", op, n, want, sentinel.ErrNotFound)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
