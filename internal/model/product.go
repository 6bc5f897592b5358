package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name  string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock int             `gorm:"not null;default:0" json:"stock"`
}

// ProductRequest is the body accepted by product create and update.
type ProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"dgt0"`
	Stock int             `json:"stock" validate:"gte=0"`
}

// ProductResponse is the API view of a product.
type ProductResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
}

// Apply copies every mutable field of the request onto the product.
func (r *ProductRequest) Apply(p *Product) {
	p.Name = r.Name
	p.Price = r.Price
	p.Stock = r.Stock
}
