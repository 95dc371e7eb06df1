package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"agora/pkg/platform/circuit"
	"agora/pkg/platform/codec"
)

// HTTPClient talks to a REST payout provider:
//
//	POST /payouts              -> {"payout_id": "...", "status": "pending"}
//	GET  /payouts/{payout_id}  -> {"payout_id": "...", "status": "completed"}
//
// Calls go through a circuit breaker; only retryable failures count against it.
type HTTPClient struct {
	client  *resty.Client
	breaker *circuit.Breaker
	logger  *slog.Logger
}

type HTTPOption func(*HTTPClient)

func WithLogger(logger *slog.Logger) HTTPOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

func WithBreaker(b *circuit.Breaker) HTTPOption {
	return func(c *HTTPClient) {
		if b != nil {
			c.breaker = b
		}
	}
}

// WithRetries retries transport errors, 429 and 5xx responses.
func WithRetries(n int) HTTPOption {
	return func(c *HTTPClient) {
		c.client.SetRetryCount(n).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
			})
	}
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, opts ...HTTPOption) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, errors.New("payout gateway base URL is required")
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "agora-payouts/1.0").
		SetJSONMarshaler(codec.Marshal).
		SetJSONUnmarshaler(codec.Unmarshal)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	c := &HTTPClient{
		client:  client,
		breaker: circuit.New("payout-gateway", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type payoutResponse struct {
	PayoutID string `json:"payout_id"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *HTTPClient) InitiatePayout(ctx context.Context, req PayoutRequest) (PayoutResult, error) {
	const op = "initiate payout"
	if !c.breaker.Allow() {
		return PayoutResult{}, NewError(CategoryCircuitOpen, op, "payout gateway circuit is open", nil)
	}
	var (
		res    payoutResponse
		apiErr errorResponse
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", req.Reference).
		SetBody(req).
		SetResult(&res).
		SetError(&apiErr).
		Post("/payouts")
	if gerr := classify(op, resp, err, apiErr); gerr != nil {
		c.record(ctx, gerr)
		return PayoutResult{}, gerr
	}
	c.record(ctx, nil)
	if res.PayoutID == "" {
		return PayoutResult{}, NewError(CategoryBadResponse, op, "response carries no payout id", nil)
	}
	status, err := ParseStatus(res.Status)
	if err != nil {
		return PayoutResult{}, err
	}
	return PayoutResult{PayoutID: res.PayoutID, Status: status}, nil
}

func (c *HTTPClient) GetPayoutStatus(ctx context.Context, payoutID string) (PayoutStatus, error) {
	const op = "get payout status"
	if !c.breaker.Allow() {
		return "", NewError(CategoryCircuitOpen, op, "payout gateway circuit is open", nil)
	}
	var (
		res    payoutResponse
		apiErr errorResponse
	)
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("payoutID", payoutID).
		SetResult(&res).
		SetError(&apiErr).
		Get("/payouts/{payoutID}")
	if gerr := classify(op, resp, err, apiErr); gerr != nil {
		c.record(ctx, gerr)
		return "", gerr
	}
	c.record(ctx, nil)
	return ParseStatus(res.Status)
}

func (c *HTTPClient) record(ctx context.Context, err *Error) {
	if err == nil {
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "payout gateway circuit closed")
		}
		return
	}
	if !err.Retryable || err.Category == CategoryCircuitOpen {
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "payout gateway circuit opened", "error", err)
	}
}

func classify(op string, resp *resty.Response, err error, apiErr errorResponse) *Error {
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return NewError(CategoryTimeout, op, "provider did not respond in time", err)
		}
		return NewError(CategoryProviderOutage, op, "provider unreachable", err)
	}
	if !resp.IsError() {
		return nil
	}
	msg := apiErr.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return NewError(CategoryAuthentication, op, msg, nil)
	case code == http.StatusNotFound:
		return NewError(CategoryNotFound, op, msg, nil)
	case code == http.StatusTooManyRequests:
		return NewError(CategoryRateLimited, op, msg, nil)
	case code >= http.StatusInternalServerError:
		return NewError(CategoryProviderOutage, op, msg, nil)
	default:
		return NewError(CategoryRejected, op, msg, nil)
	}
}
