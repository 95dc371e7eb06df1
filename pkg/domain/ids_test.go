package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "agora/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseUserID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseTerritoryID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseUserID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, UserID(validUUID), id)
	})
}

func TestParseID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE memberships;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Lowercase valid UUID", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCheckoutID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types share parsing behavior.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	validUUID := uuid.New().String()
	invalidInputs := []string{"", "invalid", uuid.Nil.String()}

	parsers := map[string]func(string) error{
		"user":       func(s string) error { _, err := ParseUserID(s); return err },
		"territory":  func(s string) error { _, err := ParseTerritoryID(s); return err },
		"membership": func(s string) error { _, err := ParseMembershipID(s); return err },
		"store":      func(s string) error { _, err := ParseStoreID(s); return err },
		"item":       func(s string) error { _, err := ParseStoreItemID(s); return err },
		"checkout":   func(s string) error { _, err := ParseCheckoutID(s); return err },
	}

	for name, parse := range parsers {
		require.NoError(t, parse(validUUID), name)
		for _, input := range invalidInputs {
			require.Error(t, parse(input), "%s should reject %q", name, input)
		}
	}
}

// TestTypedIDs_JSONRendersAsString guards against typed IDs serialising as byte arrays.
func TestTypedIDs_JSONRendersAsString(t *testing.T) {
	raw := uuid.New()
	payload, err := json.Marshal(struct {
		TerritoryID TerritoryID `json:"territory_id"`
	}{TerritoryID: TerritoryID(raw)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"territory_id":"`+raw.String()+`"}`, string(payload))

	var decoded struct {
		TerritoryID TerritoryID `json:"territory_id"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, TerritoryID(raw), decoded.TerritoryID)
}
