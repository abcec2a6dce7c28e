package queries

import (
	"errors"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

var (
	ErrAuthenticateQueryIsNotConstructed = errors.New(
		"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
	)
)

// AuthenticateQuery checks a login email and password against the stored
// credentials. A failed lookup and a wrong password both produce
// UnauthorizedError so callers cannot probe which emails are registered.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a credential check query.
// Validates that both the email and the password are set.
// Returns an error if any validation fails.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	authQuery := AuthenticateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		authQuery.setEmail(email),
		authQuery.setPassword(password),
	); err != nil {
		return AuthenticateQuery{}, err
	}

	return authQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateQueryIsNotConstructed if validation fails.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the login email being checked.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the plain-text password being checked.
func (q AuthenticateQuery) Password() string {
	return q.password
}

func (q *AuthenticateQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = email
	return nil
}

func (q *AuthenticateQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateQueryResponse identifies the authenticated account.
type AuthenticateQueryResponse struct {
	UserID kernel.UUID
	Name   string
	Role   user.Role
}
