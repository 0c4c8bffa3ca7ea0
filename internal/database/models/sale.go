package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a bank product sold to a client
type Sale struct {
	BaseModel
	ClientID      uuid.UUID       `json:"client_id" gorm:"type:uuid;not null;index"`
	BankProductID uuid.UUID       `json:"bank_product_id" gorm:"type:uuid;not null;index"`
	SaleDate      time.Time       `json:"sale_date" gorm:"not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	DurationYears int             `json:"duration_years" gorm:"not null"`
	Status        SaleStatus      `json:"status" gorm:"type:varchar(20);not null;default:'new'"`

	Client      *Client      `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	BankProduct *BankProduct `json:"bank_product,omitempty" gorm:"foreignKey:BankProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// Calculation is a stored monthly payment quote for a client. A client holds
// at most one quote per product, amount and duration.
type Calculation struct {
	BaseModel
	ClientID      uuid.UUID       `json:"client_id" gorm:"type:uuid;not null;uniqueIndex:idx_calculation_quote"`
	BankProductID uuid.UUID       `json:"bank_product_id" gorm:"type:uuid;not null;uniqueIndex:idx_calculation_quote"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null;uniqueIndex:idx_calculation_quote"`
	DurationYears int             `json:"duration_years" gorm:"not null;uniqueIndex:idx_calculation_quote"`
	Rate          decimal.Decimal `json:"rate" gorm:"type:numeric(10,2);not null"`

	Client      *Client      `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	BankProduct *BankProduct `json:"bank_product,omitempty" gorm:"foreignKey:BankProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Calculation
func (Calculation) TableName() string {
	return "calculations"
}
