package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client is a converted customer with the financial profile banks assess.
// Money columns hold monthly amounts.
type Client struct {
	BaseModel
	AgentID             *uuid.UUID      `json:"agent_id,omitempty" gorm:"type:uuid;index"`
	TeamID              *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`
	LeadID              *uuid.UUID      `json:"lead_id,omitempty" gorm:"type:uuid;index"`
	FirstName           string          `json:"first_name" gorm:"not null;size:30"`
	LastName            string          `json:"last_name" gorm:"not null;size:30"`
	Email               string          `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PhoneNumber         string          `json:"phone_number" gorm:"uniqueIndex;not null;size:25"`
	BirthDate           time.Time       `json:"birth_date" gorm:"type:date;not null"`
	Salary              decimal.Decimal `json:"salary" gorm:"type:numeric(12,2);not null"`
	SourceOfIncome      SourceOfIncome  `json:"source_of_income" gorm:"type:varchar(20);not null"`
	Employer            string          `json:"employer,omitempty" gorm:"size:100"`
	EmploymentType      EmploymentType  `json:"employment_type,omitempty" gorm:"type:varchar(30)"`
	EmploymentStartDate *time.Time      `json:"employment_start_date,omitempty" gorm:"type:date"`
	EmploymentEndDate   *time.Time      `json:"employment_end_date,omitempty" gorm:"type:date"`
	Liabilities         decimal.Decimal `json:"liabilities" gorm:"type:numeric(12,2);not null;default:0"`
	LivingExpenses      decimal.Decimal `json:"living_expenses" gorm:"type:numeric(12,2);not null"`
	RatePerMonth        decimal.Decimal `json:"rate_per_month" gorm:"type:numeric(10,2);not null;default:0"`
	Creditworthiness    decimal.Decimal `json:"creditworthiness" gorm:"type:numeric(12,2);not null;default:0"`
	ProcessingDate      *time.Time      `json:"processing_date,omitempty"`

	Agent *Agent `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:SET NULL"`
	Team  *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Lead  *Lead  `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:SET NULL"`
	Sales []Sale `json:"sales,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Age returns the client's age in whole years on the date of now
func (c *Client) Age(now time.Time) int {
	age := now.Year() - c.BirthDate.Year()
	if now.Month() < c.BirthDate.Month() ||
		(now.Month() == c.BirthDate.Month() && now.Day() < c.BirthDate.Day()) {
		age--
	}
	return age
}

// NetIncome is the salary left after liabilities and existing loan rates
func (c *Client) NetIncome() decimal.Decimal {
	return c.Salary.Sub(c.Liabilities.Add(c.RatePerMonth))
}
