package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// RegisterUserCommandHandler handles account registration.
// The password is hashed with bcrypt before the user is stored; email
// uniqueness is checked inside the same transaction that writes the account.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
//
// Returns:
//   - kernel.UUID: the ID of the created account
//   - error: ConflictError when the email is already taken, or a validation
//     or persistence error
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return kernel.UUID{}, errs.NewConflictError("user", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	userID := kernel.NewUUID()

	account, err := user.NewUser(
		userID,
		cmd.Name(),
		cmd.Email(),
		string(passwordHash),
		cmd.Role(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return userID, nil
}
