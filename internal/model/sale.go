package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LocalDateTimeLayout is the wire format of sale timestamps: no zone designator.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime marshals a time without its zone, e.g. "2025-03-01T10:15:30".
type LocalDateTime time.Time

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(LocalDateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = LocalDateTime(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(LocalDateTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	*t = LocalDateTime(parsed)
	return nil
}

// Sale is append-only. Price is the unit price at sale time times quantity.
type Sale struct {
	BaseModel
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   Product         `gorm:"constraint:OnDelete:RESTRICT" json:"product"`
	ClientID  uint            `gorm:"not null;index" json:"client_id"`
	Client    Client          `gorm:"constraint:OnDelete:RESTRICT" json:"client"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	SaleDate  time.Time       `gorm:"not null;index" json:"sale_date"`
}

// SaleResponse embeds the full product and client views.
type SaleResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Client   ClientResponse  `json:"client"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	SaleDate LocalDateTime   `json:"saleDate"`
}

func (s *Sale) ToResponse() SaleResponse {
	return SaleResponse{
		ID:       s.ID,
		Product:  s.Product.ToResponse(),
		Client:   s.Client.ToResponse(),
		Quantity: s.Quantity,
		Price:    s.Price,
		SaleDate: LocalDateTime(s.SaleDate),
	}
}

func ToSaleResponses(sales []Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = sales[i].ToResponse()
	}
	return responses
}
