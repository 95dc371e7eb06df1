package access

import (
	"agora/internal/membership/models"
	id "agora/pkg/domain"
)

// Cache key layout. Capability entries hold only the membership-derived
// decision; the SystemAdmin bypass is resolved through its own permission entry.
const (
	keyPrefixCapability = "access:cap:"
	keyPrefixPermission = "access:perm:"
	keyPrefixMembership = "access:membership:"
)

func capabilityKey(userID id.UserID, territoryID id.TerritoryID, capType models.CapabilityType) string {
	return keyPrefixCapability + userID.String() + ":" + territoryID.String() + ":" + string(capType)
}

func permissionKey(userID id.UserID, permType models.PermissionType) string {
	return keyPrefixPermission + userID.String() + ":" + string(permType)
}

func membershipKey(userID id.UserID, territoryID id.TerritoryID) string {
	return keyPrefixMembership + userID.String() + ":" + territoryID.String()
}

// membershipKeys lists every entry derived from one (user, territory) membership.
func membershipKeys(userID id.UserID, territoryID id.TerritoryID) []string {
	keys := make([]string, 0, len(models.CapabilityTypes)+1)
	keys = append(keys, membershipKey(userID, territoryID))
	for _, c := range models.CapabilityTypes {
		keys = append(keys, capabilityKey(userID, territoryID, c))
	}
	return keys
}
