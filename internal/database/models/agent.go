package models

import (
	"github.com/google/uuid"
)

// Agent handles leads for the companies it is explicitly linked to
type Agent struct {
	BaseModel
	TeamID      *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	FirstName   string     `json:"first_name" gorm:"not null;size:30" validate:"required,max=30"`
	LastName    string     `json:"last_name" gorm:"not null;size:30" validate:"required,max=30"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null;size:50" validate:"required,email,max=50"`
	PhoneNumber string     `json:"phone_number" gorm:"size:30"`
	Role        AgentRole  `json:"role" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Team      *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Companies []Company `json:"companies,omitempty" gorm:"many2many:agent_companies;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Agent
func (Agent) TableName() string {
	return "agents"
}

// FullName returns "First Last"
func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}
