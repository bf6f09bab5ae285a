package queries

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fastdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies staff credentials against the stored
// bcrypt hash.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for credential verification.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the verification. Returns ErrInvalidCredentials for an
// unknown username or a failed hash comparison.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var id uuid.UUID
	var username, passwordHash, role string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			password_hash,
			role
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(&id, &username, &passwordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())) != nil {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		ID:       userID,
		Username: username,
		Role:     role,
	}, nil
}
