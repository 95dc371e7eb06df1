package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agora/internal/membership/models"
	"agora/internal/platform/postgres"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
)

// PostgresMembershipStore persists memberships in PostgreSQL. The partial
// unique index on resident memberships backs the one-resident invariant.
type PostgresMembershipStore struct {
	db *sql.DB
}

func NewPostgresMembershipStore(db *sql.DB) *PostgresMembershipStore {
	return &PostgresMembershipStore{db: db}
}

const membershipColumns = `id, user_id, territory_id, role, verification, geo_verified_at, document_verified_at, created_at, updated_at`

func (s *PostgresMembershipStore) Create(ctx context.Context, m *models.Membership) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO territory_memberships (`+membershipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.UUID(m.ID), uuid.UUID(m.UserID), uuid.UUID(m.TerritoryID), string(m.Role), string(m.Verification),
		nullTime(m.GeoVerifiedAt), nullTime(m.DocumentVerifiedAt), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create membership: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

func (s *PostgresMembershipStore) Update(ctx context.Context, m *models.Membership) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE territory_memberships
		SET role = $2, verification = $3, geo_verified_at = $4, document_verified_at = $5, updated_at = $6
		WHERE id = $1
	`, uuid.UUID(m.ID), string(m.Role), string(m.Verification), nullTime(m.GeoVerifiedAt), nullTime(m.DocumentVerifiedAt), m.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("update membership: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("update membership: %w", err)
	}
	return requireOneRow(res, "update membership")
}

func (s *PostgresMembershipStore) FindByID(ctx context.Context, membershipID id.MembershipID) (*models.Membership, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM territory_memberships WHERE id = $1`, uuid.UUID(membershipID))
	return scanMembership(row)
}

func (s *PostgresMembershipStore) FindByUserAndTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM territory_memberships WHERE user_id = $1 AND territory_id = $2`,
		uuid.UUID(userID), uuid.UUID(territoryID))
	return scanMembership(row)
}

func (s *PostgresMembershipStore) FindResidentByUser(ctx context.Context, userID id.UserID) (*models.Membership, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM territory_memberships WHERE user_id = $1 AND role = $2`,
		uuid.UUID(userID), string(models.RoleResident))
	return scanMembership(row)
}

func (s *PostgresMembershipStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Membership, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM territory_memberships WHERE user_id = $1 ORDER BY created_at`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var out []*models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(row scanner) (*models.Membership, error) {
	var (
		m                  models.Membership
		mID, uID, tID      uuid.UUID
		role, verification string
		geoAt, documentAt  sql.NullTime
	)
	err := row.Scan(&mID, &uID, &tID, &role, &verification, &geoAt, &documentAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	m.ID = id.MembershipID(mID)
	m.UserID = id.UserID(uID)
	m.TerritoryID = id.TerritoryID(tID)
	m.Role = models.Role(role)
	m.Verification = models.Verification(verification)
	m.GeoVerifiedAt = timePtr(geoAt)
	m.DocumentVerifiedAt = timePtr(documentAt)
	return &m, nil
}

// PostgresCapabilityStore persists capability grants in PostgreSQL.
type PostgresCapabilityStore struct {
	db *sql.DB
}

func NewPostgresCapabilityStore(db *sql.DB) *PostgresCapabilityStore {
	return &PostgresCapabilityStore{db: db}
}

const capabilityColumns = `id, membership_id, capability_type, granted_at, granted_by, revoked_at, revoked_by, note`

func (s *PostgresCapabilityStore) Create(ctx context.Context, c *models.Capability) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO membership_capabilities (`+capabilityColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, uuid.UUID(c.ID), uuid.UUID(c.MembershipID), string(c.Type), c.GrantedAt, uuid.UUID(c.GrantedBy),
		nullTime(c.RevokedAt), nullUser(c.RevokedBy), c.Note)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create capability: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create capability: %w", err)
	}
	return nil
}

func (s *PostgresCapabilityStore) Update(ctx context.Context, c *models.Capability) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE membership_capabilities SET revoked_at = $2, revoked_by = $3, note = $4 WHERE id = $1
	`, uuid.UUID(c.ID), nullTime(c.RevokedAt), nullUser(c.RevokedBy), c.Note)
	if err != nil {
		return fmt.Errorf("update capability: %w", err)
	}
	return requireOneRow(res, "update capability")
}

func (s *PostgresCapabilityStore) FindByID(ctx context.Context, capabilityID id.CapabilityID) (*models.Capability, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+capabilityColumns+` FROM membership_capabilities WHERE id = $1`, uuid.UUID(capabilityID))
	return scanCapability(row)
}

func (s *PostgresCapabilityStore) FindActive(ctx context.Context, membershipID id.MembershipID, capType models.CapabilityType) (*models.Capability, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+capabilityColumns+` FROM membership_capabilities
		WHERE membership_id = $1 AND capability_type = $2 AND revoked_at IS NULL
	`, uuid.UUID(membershipID), string(capType))
	return scanCapability(row)
}

func (s *PostgresCapabilityStore) ListActiveByMembership(ctx context.Context, membershipID id.MembershipID) ([]*models.Capability, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT `+capabilityColumns+` FROM membership_capabilities
		WHERE membership_id = $1 AND revoked_at IS NULL ORDER BY granted_at
	`, uuid.UUID(membershipID))
	if err != nil {
		return nil, fmt.Errorf("list capabilities: %w", err)
	}
	defer rows.Close()
	var out []*models.Capability
	for rows.Next() {
		c, err := scanCapability(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCapability(row scanner) (*models.Capability, error) {
	var (
		c             models.Capability
		cID, mID, gBy uuid.UUID
		capType       string
		revokedAt     sql.NullTime
		revokedBy     uuid.NullUUID
	)
	err := row.Scan(&cID, &mID, &capType, &c.GrantedAt, &gBy, &revokedAt, &revokedBy, &c.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan capability: %w", err)
	}
	c.ID = id.CapabilityID(cID)
	c.MembershipID = id.MembershipID(mID)
	c.Type = models.CapabilityType(capType)
	c.GrantedBy = id.UserID(gBy)
	c.RevokedAt = timePtr(revokedAt)
	c.RevokedBy = userPtr(revokedBy)
	return &c, nil
}

// PostgresPermissionStore persists system permissions in PostgreSQL.
type PostgresPermissionStore struct {
	db *sql.DB
}

func NewPostgresPermissionStore(db *sql.DB) *PostgresPermissionStore {
	return &PostgresPermissionStore{db: db}
}

const permissionColumns = `id, user_id, permission_type, granted_at, granted_by, revoked_at, revoked_by`

func (s *PostgresPermissionStore) Create(ctx context.Context, p *models.SystemPermission) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO system_permissions (`+permissionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(p.ID), uuid.UUID(p.UserID), string(p.Type), p.GrantedAt, uuid.UUID(p.GrantedBy),
		nullTime(p.RevokedAt), nullUser(p.RevokedBy))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("create permission: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create permission: %w", err)
	}
	return nil
}

func (s *PostgresPermissionStore) Update(ctx context.Context, p *models.SystemPermission) error {
	res, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		UPDATE system_permissions SET revoked_at = $2, revoked_by = $3 WHERE id = $1
	`, uuid.UUID(p.ID), nullTime(p.RevokedAt), nullUser(p.RevokedBy))
	if err != nil {
		return fmt.Errorf("update permission: %w", err)
	}
	return requireOneRow(res, "update permission")
}

func (s *PostgresPermissionStore) FindByID(ctx context.Context, permissionID id.PermissionID) (*models.SystemPermission, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+permissionColumns+` FROM system_permissions WHERE id = $1`, uuid.UUID(permissionID))
	return scanPermission(row)
}

func (s *PostgresPermissionStore) FindActive(ctx context.Context, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error) {
	row := tx.QuerierFrom(ctx, s.db).QueryRowContext(ctx, `
		SELECT `+permissionColumns+` FROM system_permissions
		WHERE user_id = $1 AND permission_type = $2 AND revoked_at IS NULL
	`, uuid.UUID(userID), string(permType))
	return scanPermission(row)
}

func (s *PostgresPermissionStore) ListActiveByUser(ctx context.Context, userID id.UserID) ([]*models.SystemPermission, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT `+permissionColumns+` FROM system_permissions
		WHERE user_id = $1 AND revoked_at IS NULL ORDER BY granted_at
	`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var out []*models.SystemPermission
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPermission(row scanner) (*models.SystemPermission, error) {
	var (
		p             models.SystemPermission
		pID, uID, gBy uuid.UUID
		permType      string
		revokedAt     sql.NullTime
		revokedBy     uuid.NullUUID
	)
	err := row.Scan(&pID, &uID, &permType, &p.GrantedAt, &gBy, &revokedAt, &revokedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan permission: %w", err)
	}
	p.ID = id.PermissionID(pID)
	p.UserID = id.UserID(uID)
	p.Type = models.PermissionType(permType)
	p.GrantedBy = id.UserID(gBy)
	p.RevokedAt = timePtr(revokedAt)
	p.RevokedBy = userPtr(revokedBy)
	return &p, nil
}

func requireOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sentinel.ErrNotFound)
	}
	return nil
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

func nullUser(u *id.UserID) uuid.NullUUID {
	if u == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*u), Valid: true}
}

func userPtr(u uuid.NullUUID) *id.UserID {
	if !u.Valid {
		return nil
	}
	v := id.UserID(u.UUID)
	return &v
}
