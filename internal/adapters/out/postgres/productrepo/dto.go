// Package productrepo provides data transfer objects and mapping functions for product persistence.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/kernel"
	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Images are stored as a native Postgres text array.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Price       float64
	Category    string `gorm:"index"`
	Stock       int
	Images      pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		VendorID:    aggregate.Vendor().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		Category:    aggregate.Category(),
		Stock:       aggregate.Stock(),
		Images:      pq.StringArray(aggregate.Images()),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		vendorID,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.Stock,
		[]string(dto.Images),
	)
}
