package commands

import (
	"context"
)

// UpdateProfileCommandHandler handles profile updates.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
// Requires a UserUoWFactory for transactional persistence.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
// Loads the account, applies the new profile data, and persists the result.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.UpdateProfile(cmd.Name(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
