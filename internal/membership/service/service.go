package service

import (
	"context"
	"errors"
	"log/slog"

	"agora/internal/membership/metrics"
	"agora/internal/membership/models"
	"agora/internal/platform/eventbus"
	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
	"agora/pkg/platform/sentinel"
	"agora/pkg/platform/tx"
	"agora/pkg/requestcontext"
)

type MembershipStore interface {
	Create(ctx context.Context, m *models.Membership) error
	Update(ctx context.Context, m *models.Membership) error
	FindByID(ctx context.Context, membershipID id.MembershipID) (*models.Membership, error)
	FindByUserAndTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error)
	FindResidentByUser(ctx context.Context, userID id.UserID) (*models.Membership, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Membership, error)
}

type CapabilityStore interface {
	Create(ctx context.Context, c *models.Capability) error
	Update(ctx context.Context, c *models.Capability) error
	FindByID(ctx context.Context, capabilityID id.CapabilityID) (*models.Capability, error)
	FindActive(ctx context.Context, membershipID id.MembershipID, capType models.CapabilityType) (*models.Capability, error)
	ListActiveByMembership(ctx context.Context, membershipID id.MembershipID) ([]*models.Capability, error)
}

type PermissionStore interface {
	Create(ctx context.Context, p *models.SystemPermission) error
	Update(ctx context.Context, p *models.SystemPermission) error
	FindByID(ctx context.Context, permissionID id.PermissionID) (*models.SystemPermission, error)
	FindActive(ctx context.Context, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error)
	ListActiveByUser(ctx context.Context, userID id.UserID) ([]*models.SystemPermission, error)
}

// Authorizer is the slice of the access evaluator used to gate management actions.
type Authorizer interface {
	RequireCapability(ctx context.Context, userID id.UserID, territoryID id.TerritoryID, capType models.CapabilityType) error
	RequireSystemPermission(ctx context.Context, userID id.UserID, permType models.PermissionType) error
}

// Service manages memberships, capability grants and system permissions.
// Every committed change is published so access caches can evict.
type Service struct {
	memberships  MembershipStore
	capabilities CapabilityStore
	permissions  PermissionStore
	authz        Authorizer
	tx           tx.Runner
	publisher    eventbus.Publisher
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p eventbus.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func New(memberships MembershipStore, capabilities CapabilityStore, permissions PermissionStore, authz Authorizer, runner tx.Runner, opts ...Option) (*Service, error) {
	if memberships == nil || capabilities == nil || permissions == nil {
		return nil, errors.New("membership, capability and permission stores are required")
	}
	if authz == nil {
		return nil, errors.New("authorizer is required")
	}
	if runner == nil {
		return nil, errors.New("transaction runner is required")
	}
	s := &Service{
		memberships:  memberships,
		capabilities: capabilities,
		permissions:  permissions,
		authz:        authz,
		tx:           runner,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetMembership returns the user's membership in the territory.
func (s *Service) GetMembership(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error) {
	m, err := s.memberships.FindByUserAndTerritory(ctx, userID, territoryID)
	if err != nil {
		return nil, translate(err, "membership not found", "failed to load membership")
	}
	return m, nil
}

// ListMemberships returns every membership of the user, oldest first.
func (s *Service) ListMemberships(ctx context.Context, userID id.UserID) ([]*models.Membership, error) {
	ms, err := s.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list memberships")
	}
	return ms, nil
}

// EnterTerritory returns the user's membership in the territory, creating a
// Visitor membership on first entry.
func (s *Service) EnterTerritory(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error) {
	var (
		result  *models.Membership
		created bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.memberships.FindByUserAndTerritory(ctx, userID, territoryID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
		}
		m := models.NewVisitor(userID, territoryID, requestcontext.Now(ctx))
		if err := s.memberships.Create(ctx, m); err != nil {
			return translate(err, "", "failed to create membership")
		}
		result, created = m, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.metrics.IncrementChange("territory_entered")
		s.membershipChanged(ctx, result)
	}
	return result, nil
}

// ClaimResidency makes the user a Resident of the territory. A user who is
// already a Resident elsewhere gets CodeConflict.
func (s *Service) ClaimResidency(ctx context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error) {
	var (
		result  *models.Membership
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		resident, err := s.memberships.FindResidentByUser(ctx, userID)
		switch {
		case err == nil && resident.TerritoryID == territoryID:
			result = resident
			return nil
		case err == nil:
			return dErrors.New(dErrors.CodeConflict, "user is already a resident of another territory")
		case !errors.Is(err, sentinel.ErrNotFound):
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load resident membership")
		}

		now := requestcontext.Now(ctx)
		m, err := s.memberships.FindByUserAndTerritory(ctx, userID, territoryID)
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			m = models.NewVisitor(userID, territoryID, now)
			m.ApplyResidency(now)
			err = s.memberships.Create(ctx, m)
		case err != nil:
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
		default:
			m.ApplyResidency(now)
			err = s.memberships.Update(ctx, m)
		}
		if err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "user is already a resident of another territory")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save membership")
		}
		result, changed = m, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.metrics.IncrementChange("residency_claimed")
		s.logger.InfoContext(ctx, "residency_claimed",
			"user_id", userID,
			"territory_id", territoryID,
			"request_id", requestcontext.RequestID(ctx),
		)
		s.membershipChanged(ctx, result)
	}
	return result, nil
}

// VerifyResidency records a residency proof. The actor needs the Curator
// capability in the membership's territory.
func (s *Service) VerifyResidency(ctx context.Context, actorID id.UserID, membershipID id.MembershipID, kind models.Verification) (*models.Membership, error) {
	if kind != models.VerificationGeo && kind != models.VerificationDocument {
		return nil, dErrors.New(dErrors.CodeValidation, "verification must be geo_verified or document_verified")
	}
	current, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, translate(err, "membership not found", "failed to load membership")
	}
	if err := s.authz.RequireCapability(ctx, actorID, current.TerritoryID, models.CapabilityCurator); err != nil {
		return nil, err
	}

	var result *models.Membership
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.memberships.FindByID(ctx, membershipID)
		if err != nil {
			return translate(err, "membership not found", "failed to load membership")
		}
		if err := m.CanVerify(); err != nil {
			return err
		}
		m.ApplyVerification(kind, requestcontext.Now(ctx))
		if err := s.memberships.Update(ctx, m); err != nil {
			return translate(err, "membership not found", "failed to save membership")
		}
		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementChange("residency_verified")
	s.logger.InfoContext(ctx, "residency_verified",
		"membership_id", membershipID,
		"verification", kind,
		"actor_id", actorID,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.membershipChanged(ctx, result)
	return result, nil
}

// ListCapabilities returns the active capabilities of a membership.
func (s *Service) ListCapabilities(ctx context.Context, membershipID id.MembershipID) ([]*models.Capability, error) {
	caps, err := s.capabilities.ListActiveByMembership(ctx, membershipID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list capabilities")
	}
	return caps, nil
}

// GrantCapability attaches a capability to a membership. The actor needs the
// Curator capability in the membership's territory.
func (s *Service) GrantCapability(ctx context.Context, actorID id.UserID, membershipID id.MembershipID, capType models.CapabilityType, note string) (*models.Capability, error) {
	if !capType.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown capability type %q", capType)
	}
	if len(note) > 500 {
		return nil, dErrors.New(dErrors.CodeValidation, "note must be at most 500 characters")
	}
	m, err := s.memberships.FindByID(ctx, membershipID)
	if err != nil {
		return nil, translate(err, "membership not found", "failed to load membership")
	}
	if err := s.authz.RequireCapability(ctx, actorID, m.TerritoryID, models.CapabilityCurator); err != nil {
		return nil, err
	}

	c := &models.Capability{
		ID:           id.NewCapabilityID(),
		MembershipID: m.ID,
		Type:         capType,
		GrantedAt:    requestcontext.Now(ctx),
		GrantedBy:    actorID,
		Note:         note,
	}
	if err := s.capabilities.Create(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "%s capability already granted", capType)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant capability")
	}

	s.metrics.IncrementChange("capability_granted")
	s.logger.InfoContext(ctx, "capability_granted",
		"capability_id", c.ID,
		"membership_id", m.ID,
		"type", capType,
		"actor_id", actorID,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, models.TopicCapabilityGranted, m.UserID.String(), capabilityEvent(c, m, actorID, c.GrantedAt))
	return c, nil
}

// RevokeCapability revokes an active capability. Revoking twice is CodeConflict.
func (s *Service) RevokeCapability(ctx context.Context, actorID id.UserID, capabilityID id.CapabilityID) (*models.Capability, error) {
	c, err := s.capabilities.FindByID(ctx, capabilityID)
	if err != nil {
		return nil, translate(err, "capability not found", "failed to load capability")
	}
	m, err := s.memberships.FindByID(ctx, c.MembershipID)
	if err != nil {
		return nil, translate(err, "membership not found", "failed to load membership")
	}
	if err := s.authz.RequireCapability(ctx, actorID, m.TerritoryID, models.CapabilityCurator); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.capabilities.FindByID(ctx, capabilityID)
		if err != nil {
			return translate(err, "capability not found", "failed to load capability")
		}
		if err := current.CanRevoke(); err != nil {
			return err
		}
		current.ApplyRevoke(actorID, now)
		if err := s.capabilities.Update(ctx, current); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke capability")
		}
		c = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementChange("capability_revoked")
	s.logger.InfoContext(ctx, "capability_revoked",
		"capability_id", c.ID,
		"membership_id", m.ID,
		"type", c.Type,
		"actor_id", actorID,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.publish(ctx, models.TopicCapabilityRevoked, m.UserID.String(), capabilityEvent(c, m, actorID, now))
	return c, nil
}

// GrantSystemPermission grants a global permission. Only system admins may grant.
func (s *Service) GrantSystemPermission(ctx context.Context, actorID, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error) {
	if !permType.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeValidation, "unknown permission type %q", permType)
	}
	if err := s.authz.RequireSystemPermission(ctx, actorID, models.PermissionSystemAdmin); err != nil {
		return nil, err
	}
	p := &models.SystemPermission{
		ID:        id.NewPermissionID(),
		UserID:    userID,
		Type:      permType,
		GrantedAt: requestcontext.Now(ctx),
		GrantedBy: actorID,
	}
	if err := s.permissions.Create(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "%s permission already granted", permType)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant permission")
	}
	s.metrics.IncrementChange("permission_granted")
	s.logger.InfoContext(ctx, "permission_granted",
		"permission_id", p.ID,
		"user_id", userID,
		"type", permType,
		"actor_id", actorID,
	)
	s.publish(ctx, models.TopicPermissionGranted, userID.String(), permissionEvent(p, actorID, p.GrantedAt))
	return p, nil
}

// RevokeSystemPermission revokes a global permission. Only system admins may
// revoke, and an admin cannot revoke their own SystemAdmin grant.
func (s *Service) RevokeSystemPermission(ctx context.Context, actorID id.UserID, permissionID id.PermissionID) (*models.SystemPermission, error) {
	if err := s.authz.RequireSystemPermission(ctx, actorID, models.PermissionSystemAdmin); err != nil {
		return nil, err
	}
	var (
		result *models.SystemPermission
		now    = requestcontext.Now(ctx)
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.permissions.FindByID(ctx, permissionID)
		if err != nil {
			return translate(err, "permission not found", "failed to load permission")
		}
		if p.Type == models.PermissionSystemAdmin && p.UserID == actorID {
			return dErrors.New(dErrors.CodeConflict, "cannot revoke your own system admin permission")
		}
		if err := p.CanRevoke(); err != nil {
			return err
		}
		p.ApplyRevoke(actorID, now)
		if err := s.permissions.Update(ctx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke permission")
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementChange("permission_revoked")
	s.logger.InfoContext(ctx, "permission_revoked",
		"permission_id", result.ID,
		"user_id", result.UserID,
		"type", result.Type,
		"actor_id", actorID,
	)
	s.publish(ctx, models.TopicPermissionRevoked, result.UserID.String(), permissionEvent(result, actorID, now))
	return result, nil
}

// SeedSystemAdmin bootstraps the first administrator. It is a no-op when the
// user already holds an active SystemAdmin grant.
func (s *Service) SeedSystemAdmin(ctx context.Context, userID id.UserID) error {
	if userID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidInput, "bootstrap admin user id is required")
	}
	_, err := s.permissions.FindActive(ctx, userID, models.PermissionSystemAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load permission")
	}
	p := &models.SystemPermission{
		ID:        id.NewPermissionID(),
		UserID:    userID,
		Type:      models.PermissionSystemAdmin,
		GrantedAt: requestcontext.Now(ctx),
		GrantedBy: userID,
	}
	if err := s.permissions.Create(ctx, p); err != nil && !errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to seed system admin")
	}
	s.logger.InfoContext(ctx, "system_admin_seeded", "user_id", userID)
	s.publish(ctx, models.TopicPermissionGranted, userID.String(), permissionEvent(p, userID, p.GrantedAt))
	return nil
}

func (s *Service) membershipChanged(ctx context.Context, m *models.Membership) {
	s.publish(ctx, models.TopicMembershipChanged, m.UserID.String(), models.MembershipChanged{
		MembershipID: m.ID,
		TerritoryID:  m.TerritoryID,
		UserID:       m.UserID,
		Role:         m.Role,
		Verification: m.Verification,
		OccurredAt:   m.UpdatedAt,
	})
}

// publish is fire-and-forget: the change is already committed, so a failed
// publish is logged and left to the cache TTL.
func (s *Service) publish(ctx context.Context, topic, key string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		s.metrics.IncrementPublishError()
		s.logger.ErrorContext(ctx, "failed to publish access event",
			"topic", topic,
			"key", key,
			"error", err,
		)
	}
}
