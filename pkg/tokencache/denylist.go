package tokencache

import (
	"context"
	"time"
)

// Denylist records revoked token ids (jti) until the token itself expires.
// Logout is best effort: a write failure must not block the client from
// discarding its local credentials.
type Denylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
