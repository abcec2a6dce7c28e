// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"github.com/google/uuid"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The default address is optional; all three of its columns are NULL together.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	Phone        string
	Street       *string
	City         *string
	PostalCode   *string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Phone:        aggregate.Phone(),
	}

	if address := aggregate.Address(); address != nil {
		street := address.Street()
		city := address.City()
		postalCode := address.PostalCode()
		dto.Street = &street
		dto.City = &city
		dto.PostalCode = &postalCode
	}

	return dto
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.Street != nil && dto.City != nil && dto.PostalCode != nil {
		restored, addrErr := kernel.NewAddress(*dto.Street, *dto.City, *dto.PostalCode)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &restored
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.PasswordHash,
		user.Role(dto.Role),
		dto.Phone,
		address,
	)
}
