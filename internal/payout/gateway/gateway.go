// Package gateway is the boundary to the external payout provider.
package gateway

import (
	"context"

	id "agora/pkg/domain"
	dErrors "agora/pkg/domain-errors"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mocks.go -package=mocks Gateway

type PayoutStatus string

const (
	StatusPending   PayoutStatus = "pending"
	StatusCompleted PayoutStatus = "completed"
	StatusFailed    PayoutStatus = "failed"
)

func ParseStatus(s string) (PayoutStatus, error) {
	switch st := PayoutStatus(s); st {
	case StatusPending, StatusCompleted, StatusFailed:
		return st, nil
	default:
		return "", NewError(CategoryBadResponse, "parse status", "unknown payout status "+s, nil)
	}
}

// PayoutRequest asks the provider to send money to one seller. Reference is
// the idempotency key: resubmitting the same reference must not pay twice.
type PayoutRequest struct {
	Reference    string         `json:"reference"`
	TerritoryID  id.TerritoryID `json:"territory_id"`
	SellerUserID id.UserID      `json:"seller_user_id"`
	AmountCents  int64          `json:"amount_cents"`
	Currency     string         `json:"currency"`
}

type PayoutResult struct {
	PayoutID string       `json:"payout_id"`
	Status   PayoutStatus `json:"status"`
}

// Gateway is implemented by every payout provider.
type Gateway interface {
	InitiatePayout(ctx context.Context, req PayoutRequest) (PayoutResult, error)
	GetPayoutStatus(ctx context.Context, payoutID string) (PayoutStatus, error)
}

// ToDomain maps a gateway failure onto a domain error. Timeouts and outages
// stay retryable; an unknown payout is not found.
func ToDomain(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch CategoryOf(err) {
	case CategoryTimeout:
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	case CategoryNotFound:
		return dErrors.Wrap(err, dErrors.CodeNotFound, msg)
	default:
		return dErrors.Wrap(err, dErrors.CodeUnavailable, msg)
	}
}
