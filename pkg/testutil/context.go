package testutil

import (
	"net/http"

	id "agora/pkg/domain"
	"agora/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context.
// This simulates what the auth middleware does for authenticated requests.
func WithUserID(req *http.Request, userID id.UserID) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}
