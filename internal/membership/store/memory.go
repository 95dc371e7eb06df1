// Package store persists memberships, capabilities and system permissions.
// Lookups return sentinel.ErrNotFound when nothing matches; uniqueness
// violations return sentinel.ErrConflict.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"agora/internal/membership/models"
	id "agora/pkg/domain"
	"agora/pkg/platform/sentinel"
)

// InMemoryMembershipStore keeps memberships in process.
type InMemoryMembershipStore struct {
	mu          sync.RWMutex
	memberships map[id.MembershipID]models.Membership
}

func NewInMemoryMembershipStore() *InMemoryMembershipStore {
	return &InMemoryMembershipStore{memberships: make(map[id.MembershipID]models.Membership)}
}

// checkUnique enforces one membership per (user, territory) and one resident
// membership per user. Caller holds the lock.
func (s *InMemoryMembershipStore) checkUnique(m *models.Membership) error {
	for _, existing := range s.memberships {
		if existing.ID == m.ID || existing.UserID != m.UserID {
			continue
		}
		if existing.TerritoryID == m.TerritoryID {
			return fmt.Errorf("membership for user in territory: %w", sentinel.ErrConflict)
		}
		if existing.IsResident() && m.IsResident() {
			return fmt.Errorf("resident membership: %w", sentinel.ErrConflict)
		}
	}
	return nil
}

func (s *InMemoryMembershipStore) Create(_ context.Context, m *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.memberships[m.ID]; ok {
		return fmt.Errorf("membership id: %w", sentinel.ErrConflict)
	}
	if err := s.checkUnique(m); err != nil {
		return err
	}
	s.memberships[m.ID] = *m
	return nil
}

func (s *InMemoryMembershipStore) Update(_ context.Context, m *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.memberships[m.ID]; !ok {
		return sentinel.ErrNotFound
	}
	if err := s.checkUnique(m); err != nil {
		return err
	}
	s.memberships[m.ID] = *m
	return nil
}

func (s *InMemoryMembershipStore) FindByID(_ context.Context, membershipID id.MembershipID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memberships[membershipID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &m, nil
}

func (s *InMemoryMembershipStore) FindByUserAndTerritory(_ context.Context, userID id.UserID, territoryID id.TerritoryID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.memberships {
		if m.UserID == userID && m.TerritoryID == territoryID {
			return &m, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryMembershipStore) FindResidentByUser(_ context.Context, userID id.UserID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.memberships {
		if m.UserID == userID && m.IsResident() {
			return &m, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryMembershipStore) ListByUser(_ context.Context, userID id.UserID) ([]*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Membership
	for _, m := range s.memberships {
		if m.UserID == userID {
			out = append(out, &m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// InMemoryCapabilityStore keeps capability grants in process.
type InMemoryCapabilityStore struct {
	mu           sync.RWMutex
	capabilities map[id.CapabilityID]models.Capability
}

func NewInMemoryCapabilityStore() *InMemoryCapabilityStore {
	return &InMemoryCapabilityStore{capabilities: make(map[id.CapabilityID]models.Capability)}
}

func (s *InMemoryCapabilityStore) Create(_ context.Context, c *models.Capability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.capabilities {
		if existing.MembershipID == c.MembershipID && existing.Type == c.Type && existing.IsActive() {
			return fmt.Errorf("active capability: %w", sentinel.ErrConflict)
		}
	}
	s.capabilities[c.ID] = *c
	return nil
}

func (s *InMemoryCapabilityStore) Update(_ context.Context, c *models.Capability) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.capabilities[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.capabilities[c.ID] = *c
	return nil
}

func (s *InMemoryCapabilityStore) FindByID(_ context.Context, capabilityID id.CapabilityID) (*models.Capability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.capabilities[capabilityID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryCapabilityStore) FindActive(_ context.Context, membershipID id.MembershipID, capType models.CapabilityType) (*models.Capability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.capabilities {
		if c.MembershipID == membershipID && c.Type == capType && c.IsActive() {
			return &c, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryCapabilityStore) ListActiveByMembership(_ context.Context, membershipID id.MembershipID) ([]*models.Capability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Capability
	for _, c := range s.capabilities {
		if c.MembershipID == membershipID && c.IsActive() {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GrantedAt.Before(out[j].GrantedAt) })
	return out, nil
}

// InMemoryPermissionStore keeps system permissions in process.
type InMemoryPermissionStore struct {
	mu          sync.RWMutex
	permissions map[id.PermissionID]models.SystemPermission
}

func NewInMemoryPermissionStore() *InMemoryPermissionStore {
	return &InMemoryPermissionStore{permissions: make(map[id.PermissionID]models.SystemPermission)}
}

func (s *InMemoryPermissionStore) Create(_ context.Context, p *models.SystemPermission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.permissions {
		if existing.UserID == p.UserID && existing.Type == p.Type && existing.IsActive() {
			return fmt.Errorf("active permission: %w", sentinel.ErrConflict)
		}
	}
	s.permissions[p.ID] = *p
	return nil
}

func (s *InMemoryPermissionStore) Update(_ context.Context, p *models.SystemPermission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.permissions[p.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.permissions[p.ID] = *p
	return nil
}

func (s *InMemoryPermissionStore) FindByID(_ context.Context, permissionID id.PermissionID) (*models.SystemPermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.permissions[permissionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryPermissionStore) FindActive(_ context.Context, userID id.UserID, permType models.PermissionType) (*models.SystemPermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.permissions {
		if p.UserID == userID && p.Type == permType && p.IsActive() {
			return &p, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryPermissionStore) ListActiveByUser(_ context.Context, userID id.UserID) ([]*models.SystemPermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.SystemPermission
	for _, p := range s.permissions {
		if p.UserID == userID && p.IsActive() {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GrantedAt.Before(out[j].GrantedAt) })
	return out, nil
}
