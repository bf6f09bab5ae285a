package ports

import (
	"context"
)

// Identity is the authenticated principal attached to a server-side session.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionStore defines the server-side session contract. Tokens are opaque;
// the HTTP surface transports them in an HTTP-only cookie and never inspects
// their contents.
type SessionStore interface {
	// Create stores the identity under a fresh opaque token and returns the token.
	Create(ctx context.Context, identity Identity) (string, error)

	// Get resolves a token back to its identity.
	// Returns errs.ObjectNotFoundError for unknown or expired tokens.
	Get(ctx context.Context, token string) (Identity, error)

	// Delete destroys the session for the given token. Deleting an unknown
	// token is not an error.
	Delete(ctx context.Context, token string) error
}
