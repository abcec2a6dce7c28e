package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// AuthenticateQueryHandler verifies login credentials against the database.
type AuthenticateQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewAuthenticateQueryHandler(db *gorm.DB) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db}
}

// Handle executes the credential check.
//
// Returns:
//   - AuthenticateQueryResponse identifying the account on success
//   - UnauthorizedError when the email is unknown or the password is wrong
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var id uuid.UUID
	var name, passwordHash string
	var role int

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, password_hash, role
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	if err := row.Scan(&id, &name, &passwordHash, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("login", query.Email())
		}
		return AuthenticateQueryResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return AuthenticateQueryResponse{}, errs.NewUnauthorizedError("login", query.Email())
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	return AuthenticateQueryResponse{
		UserID: userID,
		Name:   name,
		Role:   user.Role(role),
	}, nil
}
