// Package access is the single authorization decision point. Decisions are
// cached read-through and evicted by Invalidate, which both direct callers and
// the event bus handler go through.
package access

//go:generate mockgen -source=evaluator.go -destination=mocks/mocks.go -package=mocks MembershipReader,CapabilityReader,PermissionReader

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"agora/internal/access/metrics"
	"agora/internal/membership/models"
	"agora/internal/platform/cache"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/codec"
	"agora/pkg/platform/sentinel"
)

const defaultCacheTTL = 5 * time.Minute

type MembershipReader interface {
	FindByUserAndTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
}

type CapabilityReader interface {
	FindActive(ctx context.Context, membershipID id.MembershipID, capType models.CapabilityType) (*models.Capability, error)
}

type PermissionReader interface {
	FindActive(ctx context.Context, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error)
}

// Evaluator answers capability, permission and residency questions.
//
// Absence of a membership, capability or permission is a false result, never
// an error. Repository or cache failures return CodeUnavailable and callers
// must deny.
type Evaluator struct {
	memberships  MembershipReader
	capabilities CapabilityReader
	permissions  PermissionReader
	cache        cache.Cache
	ttl          time.Duration
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Evaluator)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

// WithCacheTTL bounds how long a decision may be served without an
// invalidation. Zero keeps entries until evicted.
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Evaluator) {
		e.ttl = ttl
	}
}

func New(memberships MembershipReader, capabilities CapabilityReader, permissions PermissionReader, c cache.Cache, opts ...Option) (*Evaluator, error) {
	if memberships == nil || capabilities == nil || permissions == nil {
		return nil, errors.New("membership, capability and permission readers are required")
	}
	if c == nil {
		return nil, errors.New("cache is required")
	}
	e := &Evaluator{
		memberships:  memberships,
		capabilities: capabilities,
		permissions:  permissions,
		cache:        c,
		ttl:          defaultCacheTTL,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// HasCapability reports whether the user holds capType in the territory.
// An active SystemAdmin permission grants every capability everywhere.
func (e *Evaluator) HasCapability(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, capType models.CapabilityType) (bool, error) {
	if !capType.IsValid() {
		return false, dErrors.Newf(dErrors.CodeValidation, "unknown capability type %q", capType)
	}
	admin, err := e.HasSystemPermission(ctx, userID, models.PermissionSystemAdmin)
	if err != nil {
		e.metrics.ObserveDecision("capability", "error")
		return false, err
	}
	if admin {
		e.metrics.ObserveDecision("capability", "admin")
		return true, nil
	}

	granted, err := e.readThrough(ctx, "capability", capabilityKey(userID, territoryID, capType), func(ctx context.Context) (bool, error) {
		m, err := e.membership(ctx, userID, territoryID)
		if err != nil || !m.Found {
			return false, err
		}
		_, err = e.capabilities.FindActive(ctx, m.ID, capType)
		return found(err)
	})
	e.observe("capability", granted, err)
	return granted, err
}

// HasSystemPermission checks for an active permission of exactly permType.
func (e *Evaluator) HasSystemPermission(ctx context.Context, userID id.UserID, permType models.PermissionType) (bool, error) {
	if !permType.IsValid() {
		return false, dErrors.Newf(dErrors.CodeValidation, "unknown permission type %q", permType)
	}
	granted, err := e.readThrough(ctx, "permission", permissionKey(userID, permType), func(ctx context.Context) (bool, error) {
		_, err := e.permissions.FindActive(ctx, userID, permType)
		return found(err)
	})
	e.observe("permission", granted, err)
	return granted, err
}

// IsResident reports whether the user's membership in the territory is Resident.
func (e *Evaluator) IsResident(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (bool, error) {
	m, err := e.membership(ctx, userID, territoryID)
	if err != nil {
		return false, err
	}
	return m.Found && m.Role == models.RoleResident, nil
}

// GetRole returns the user's role in the territory; ok is false without a membership.
func (e *Evaluator) GetRole(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (role models.Role, ok bool, err error) {
	m, err := e.membership(ctx, userID, territoryID)
	if err != nil || !m.Found {
		return "", false, err
	}
	return m.Role, true, nil
}

// RequireCapability fails closed: any outcome other than a positive decision is
// an error.
func (e *Evaluator) RequireCapability(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, capType models.CapabilityType) error {
	ok, err := e.HasCapability(ctx, userID, territoryID, capType)
	if err != nil {
		return err
	}
	if !ok {
		return dErrors.Newf(dErrors.CodeForbidden, "%s capability required", capType)
	}
	return nil
}

// RequireSystemPermission admits holders of permType and system admins.
func (e *Evaluator) RequireSystemPermission(ctx context.Context, userID id.UserID, permType models.PermissionType) error {
	ok, err := e.HasSystemPermission(ctx, userID, permType)
	if err != nil {
		return err
	}
	if !ok && permType != models.PermissionSystemAdmin {
		ok, err = e.HasSystemPermission(ctx, userID, models.PermissionSystemAdmin)
		if err != nil {
			return err
		}
	}
	if !ok {
		return dErrors.Newf(dErrors.CodeForbidden, "%s permission required", permType)
	}
	return nil
}

// Target names the cache entries to evict. Either TerritoryID or
// PermissionType is set.
type Target struct {
	UserID         id.UserID
	TerritoryID    id.TerritoryID
	PermissionType models.PermissionType
}

// Invalidate is the one eviction entry point. A territory target evicts the
// membership entry and every capability entry for the (user, territory).
func (e *Evaluator) Invalidate(ctx context.Context, target Target) error {
	var keys []string
	kind := ""
	switch {
	case target.PermissionType != "":
		keys = []string{permissionKey(target.UserID, target.PermissionType)}
		kind = "permission"
	case !target.TerritoryID.IsNil():
		keys = membershipKeys(target.UserID, target.TerritoryID)
		kind = "membership"
	default:
		return dErrors.New(dErrors.CodeBadRequest, "invalidation target needs a territory or permission")
	}
	if err := e.cache.Remove(ctx, keys...); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "access cache unavailable")
	}
	e.metrics.IncrementInvalidation(kind)
	e.logger.DebugContext(ctx, "access cache invalidated",
		"user_id", target.UserID,
		"target", kind,
	)
	return nil
}

// InvalidateMembershipCache evicts everything derived from the user's
// membership in the territory.
func (e *Evaluator) InvalidateMembershipCache(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) error {
	return e.Invalidate(ctx, Target{UserID: userID, TerritoryID: territoryID})
}

// InvalidateSystemPermissionCache evicts one permission decision.
func (e *Evaluator) InvalidateSystemPermissionCache(ctx context.Context, userID id.UserID, permType models.PermissionType) error {
	return e.Invalidate(ctx, Target{UserID: userID, PermissionType: permType})
}

type membershipEntry struct {
	Found        bool                `json:"found"`
	ID           id.MembershipID     `json:"id"`
	Role         models.Role         `json:"role"`
	Verification models.Verification `json:"verification"`
}

func (e *Evaluator) membership(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (membershipEntry, error) {
	key := membershipKey(userID, territoryID)
	raw, hit, err := e.cache.Get(ctx, key)
	if err != nil {
		return membershipEntry{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "access cache unavailable")
	}
	if hit {
		var entry membershipEntry
		if err := codec.Unmarshal(raw, &entry); err == nil {
			e.metrics.ObserveCacheLookup("membership", true)
			return entry, nil
		}
		e.logger.WarnContext(ctx, "discarding undecodable membership cache entry", "key", key)
	}
	e.metrics.ObserveCacheLookup("membership", false)

	var entry membershipEntry
	m, err := e.memberships.FindByUserAndTerritory(ctx, userID, territoryID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
	case err != nil:
		return membershipEntry{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "membership lookup failed")
	default:
		entry = membershipEntry{Found: true, ID: m.ID, Role: m.Role, Verification: m.Verification}
	}

	if raw, err := codec.Marshal(entry); err == nil {
		e.store(ctx, key, raw)
	}
	return entry, nil
}

func (e *Evaluator) readThrough(ctx context.Context, kind, key string, compute func(ctx context.Context) (bool, error)) (bool, error) {
	raw, hit, err := e.cache.Get(ctx, key)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeUnavailable, "access cache unavailable")
	}
	if hit && len(raw) == 1 {
		e.metrics.ObserveCacheLookup(kind, true)
		return raw[0] == '1', nil
	}
	e.metrics.ObserveCacheLookup(kind, false)

	granted, err := compute(ctx)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			err = dErrors.Wrap(err, dErrors.CodeUnavailable, kind+" lookup failed")
		}
		return false, err
	}
	value := []byte{'0'}
	if granted {
		value[0] = '1'
	}
	e.store(ctx, key, value)
	return granted, nil
}

// store populates the cache. A failed write only costs a future miss.
func (e *Evaluator) store(ctx context.Context, key string, value []byte) {
	if err := e.cache.Set(ctx, key, value, e.ttl); err != nil {
		e.logger.WarnContext(ctx, "failed to populate access cache", "key", key, "error", err)
	}
}

func (e *Evaluator) observe(kind string, granted bool, err error) {
	switch {
	case err != nil:
		e.metrics.ObserveDecision(kind, "error")
	case granted:
		e.metrics.ObserveDecision(kind, "allow")
	default:
		e.metrics.ObserveDecision(kind, "deny")
	}
}

// found maps a store lookup result onto a boolean decision.
func found(err error) (bool, error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
