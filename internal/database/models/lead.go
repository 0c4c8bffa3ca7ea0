package models

import (
	"github.com/google/uuid"
)

// Lead is an inbound contact awaiting or having completed assignment
type Lead struct {
	BaseModel
	FirstName   string           `json:"first_name" gorm:"not null;size:25"`
	PhoneNumber string           `json:"phone_number" gorm:"not null;size:25;index"`
	Message     string           `json:"message" gorm:"type:text"`
	Description string           `json:"description" gorm:"type:text"`
	Email       *string          `json:"email,omitempty" gorm:"uniqueIndex;size:255"`
	Product     FinancialProduct `json:"product" gorm:"type:varchar(20)"`
	CompanyID   *uuid.UUID       `json:"company_id,omitempty" gorm:"type:uuid;index"`
	TeamID      *uuid.UUID       `json:"team_id,omitempty" gorm:"type:uuid;index"`
	AgentID     *uuid.UUID       `json:"agent_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Company    *Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL"`
	Team       *Team           `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Agent      *Agent          `json:"agent,omitempty" gorm:"foreignKey:AgentID;constraint:OnDelete:SET NULL"`
	Submission *LeadSubmission `json:"submission,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}

// AssignmentStatus derives the lead's position in unassigned -> team -> agent
func (l *Lead) AssignmentStatus() AssignmentStatus {
	switch {
	case l.TeamID == nil:
		return AssignmentStatusUnassigned
	case l.AgentID == nil:
		return AssignmentStatusTeamAssigned
	default:
		return AssignmentStatusAgentAssigned
	}
}
