package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bank is a lender whose products are sold to clients
type Bank struct {
	BaseModel
	Name            string     `json:"name" gorm:"uniqueIndex;not null;size:30"`
	Headquarters    string     `json:"headquarters" gorm:"not null;size:30"`
	CustomerService string     `json:"customer_service" gorm:"size:15"`
	Established     *time.Time `json:"established,omitempty" gorm:"type:date"`
	Chairman        string     `json:"chairman" gorm:"size:60"`

	Products []BankProduct `json:"products,omitempty" gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Bank
func (Bank) TableName() string {
	return "banks"
}

// BankProduct is one offer of a bank. InterestRate is the yearly rate in percent.
type BankProduct struct {
	BaseModel
	BankID       uuid.UUID        `json:"bank_id" gorm:"type:uuid;not null;index"`
	ProductType  BankProductType  `json:"product_type" gorm:"type:varchar(20);not null"`
	Description  string           `json:"description" gorm:"type:text"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty" gorm:"type:numeric(5,2)"`
	Terms        string           `json:"terms" gorm:"type:text"`

	Bank *Bank `json:"bank,omitempty" gorm:"foreignKey:BankID"`
}

// TableName returns the table name for BankProduct
func (BankProduct) TableName() string {
	return "bank_products"
}
