package context

import (
	"context"

	"github.com/rentconnect/rentconnect-api/constant"
)

// GetAuthEmail returns the authenticated X-Auth-User email set by the auth
// middleware, or false when the request was anonymous.
func GetAuthEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AuthEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
