package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "agora/pkg/domain-errors"
)

// Typed identifiers. Each wraps a UUID but is a distinct type, so a TerritoryID
// can never be passed where a UserID is expected.
//
// Construct from external input with the Parse* functions; they reject empty,
// malformed, and nil UUIDs with CodeInvalidInput.

// maxIDLength bounds input before handing it to the UUID parser.
const maxIDLength = 36

func parseUUID(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if len(s) > maxIDLength || !utf8.ValidString(s) || strings.ContainsAny(s, " \t\r\n\x00") {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return u, nil
}

type UserID uuid.UUID

// NewUserID returns a fresh random user id.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses a user id from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID("user id", s)
	return UserID(u), err
}

func (i UserID) String() string { return uuid.UUID(i).String() }
func (i UserID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i UserID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type TerritoryID uuid.UUID

// NewTerritoryID returns a fresh random territory id.
func NewTerritoryID() TerritoryID { return TerritoryID(uuid.New()) }

// ParseTerritoryID parses a territory id from external input.
func ParseTerritoryID(s string) (TerritoryID, error) {
	u, err := parseUUID("territory id", s)
	return TerritoryID(u), err
}

func (i TerritoryID) String() string { return uuid.UUID(i).String() }
func (i TerritoryID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i TerritoryID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *TerritoryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type MembershipID uuid.UUID

// NewMembershipID returns a fresh random membership id.
func NewMembershipID() MembershipID { return MembershipID(uuid.New()) }

// ParseMembershipID parses a membership id from external input.
func ParseMembershipID(s string) (MembershipID, error) {
	u, err := parseUUID("membership id", s)
	return MembershipID(u), err
}

func (i MembershipID) String() string { return uuid.UUID(i).String() }
func (i MembershipID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i MembershipID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *MembershipID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type CapabilityID uuid.UUID

// NewCapabilityID returns a fresh random capability id.
func NewCapabilityID() CapabilityID { return CapabilityID(uuid.New()) }

// ParseCapabilityID parses a capability id from external input.
func ParseCapabilityID(s string) (CapabilityID, error) {
	u, err := parseUUID("capability id", s)
	return CapabilityID(u), err
}

func (i CapabilityID) String() string { return uuid.UUID(i).String() }
func (i CapabilityID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i CapabilityID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *CapabilityID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type PermissionID uuid.UUID

// NewPermissionID returns a fresh random permission id.
func NewPermissionID() PermissionID { return PermissionID(uuid.New()) }

// ParsePermissionID parses a permission id from external input.
func ParsePermissionID(s string) (PermissionID, error) {
	u, err := parseUUID("permission id", s)
	return PermissionID(u), err
}

func (i PermissionID) String() string { return uuid.UUID(i).String() }
func (i PermissionID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i PermissionID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *PermissionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type StoreID uuid.UUID

// NewStoreID returns a fresh random store id.
func NewStoreID() StoreID { return StoreID(uuid.New()) }

// ParseStoreID parses a store id from external input.
func ParseStoreID(s string) (StoreID, error) {
	u, err := parseUUID("store id", s)
	return StoreID(u), err
}

func (i StoreID) String() string { return uuid.UUID(i).String() }
func (i StoreID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i StoreID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *StoreID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type StoreItemID uuid.UUID

// NewStoreItemID returns a fresh random store item id.
func NewStoreItemID() StoreItemID { return StoreItemID(uuid.New()) }

// ParseStoreItemID parses a store item id from external input.
func ParseStoreItemID(s string) (StoreItemID, error) {
	u, err := parseUUID("store item id", s)
	return StoreItemID(u), err
}

func (i StoreItemID) String() string { return uuid.UUID(i).String() }
func (i StoreItemID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i StoreItemID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *StoreItemID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type CartID uuid.UUID

// NewCartID returns a fresh random cart id.
func NewCartID() CartID { return CartID(uuid.New()) }

// ParseCartID parses a cart id from external input.
func ParseCartID(s string) (CartID, error) {
	u, err := parseUUID("cart id", s)
	return CartID(u), err
}

func (i CartID) String() string { return uuid.UUID(i).String() }
func (i CartID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i CartID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *CartID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type CartItemID uuid.UUID

// NewCartItemID returns a fresh random cart item id.
func NewCartItemID() CartItemID { return CartItemID(uuid.New()) }

// ParseCartItemID parses a cart item id from external input.
func ParseCartItemID(s string) (CartItemID, error) {
	u, err := parseUUID("cart item id", s)
	return CartItemID(u), err
}

func (i CartItemID) String() string { return uuid.UUID(i).String() }
func (i CartItemID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i CartItemID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *CartItemID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type CheckoutID uuid.UUID

// NewCheckoutID returns a fresh random checkout id.
func NewCheckoutID() CheckoutID { return CheckoutID(uuid.New()) }

// ParseCheckoutID parses a checkout id from external input.
func ParseCheckoutID(s string) (CheckoutID, error) {
	u, err := parseUUID("checkout id", s)
	return CheckoutID(u), err
}

func (i CheckoutID) String() string { return uuid.UUID(i).String() }
func (i CheckoutID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i CheckoutID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *CheckoutID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type CheckoutItemID uuid.UUID

// NewCheckoutItemID returns a fresh random checkout item id.
func NewCheckoutItemID() CheckoutItemID { return CheckoutItemID(uuid.New()) }

// ParseCheckoutItemID parses a checkout item id from external input.
func ParseCheckoutItemID(s string) (CheckoutItemID, error) {
	u, err := parseUUID("checkout item id", s)
	return CheckoutItemID(u), err
}

func (i CheckoutItemID) String() string { return uuid.UUID(i).String() }
func (i CheckoutItemID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i CheckoutItemID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *CheckoutItemID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type InquiryID uuid.UUID

// NewInquiryID returns a fresh random inquiry id.
func NewInquiryID() InquiryID { return InquiryID(uuid.New()) }

// ParseInquiryID parses a inquiry id from external input.
func ParseInquiryID(s string) (InquiryID, error) {
	u, err := parseUUID("inquiry id", s)
	return InquiryID(u), err
}

func (i InquiryID) String() string { return uuid.UUID(i).String() }
func (i InquiryID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i InquiryID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *InquiryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type FeeConfigID uuid.UUID

// NewFeeConfigID returns a fresh random fee config id.
func NewFeeConfigID() FeeConfigID { return FeeConfigID(uuid.New()) }

// ParseFeeConfigID parses a fee config id from external input.
func ParseFeeConfigID(s string) (FeeConfigID, error) {
	u, err := parseUUID("fee config id", s)
	return FeeConfigID(u), err
}

func (i FeeConfigID) String() string { return uuid.UUID(i).String() }
func (i FeeConfigID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i FeeConfigID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *FeeConfigID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type PayoutConfigID uuid.UUID

// NewPayoutConfigID returns a fresh random payout config id.
func NewPayoutConfigID() PayoutConfigID { return PayoutConfigID(uuid.New()) }

// ParsePayoutConfigID parses a payout config id from external input.
func ParsePayoutConfigID(s string) (PayoutConfigID, error) {
	u, err := parseUUID("payout config id", s)
	return PayoutConfigID(u), err
}

func (i PayoutConfigID) String() string { return uuid.UUID(i).String() }
func (i PayoutConfigID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i PayoutConfigID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *PayoutConfigID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type SellerTransactionID uuid.UUID

// NewSellerTransactionID returns a fresh random seller transaction id.
func NewSellerTransactionID() SellerTransactionID { return SellerTransactionID(uuid.New()) }

// ParseSellerTransactionID parses a seller transaction id from external input.
func ParseSellerTransactionID(s string) (SellerTransactionID, error) {
	u, err := parseUUID("seller transaction id", s)
	return SellerTransactionID(u), err
}

func (i SellerTransactionID) String() string { return uuid.UUID(i).String() }
func (i SellerTransactionID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i SellerTransactionID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *SellerTransactionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}

type LedgerEntryID uuid.UUID

// NewLedgerEntryID returns a fresh random ledger entry id.
func NewLedgerEntryID() LedgerEntryID { return LedgerEntryID(uuid.New()) }

// ParseLedgerEntryID parses a ledger entry id from external input.
func ParseLedgerEntryID(s string) (LedgerEntryID, error) {
	u, err := parseUUID("ledger entry id", s)
	return LedgerEntryID(u), err
}

func (i LedgerEntryID) String() string { return uuid.UUID(i).String() }
func (i LedgerEntryID) IsNil() bool    { return uuid.UUID(i) == uuid.Nil }

func (i LedgerEntryID) MarshalText() ([]byte, error) { return uuid.UUID(i).MarshalText() }

func (i *LedgerEntryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(i).UnmarshalText(b)
}
