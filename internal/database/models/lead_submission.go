package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadSubmission is the audit record of a public form submission
type LeadSubmission struct {
	BaseModel
	LeadID      uuid.UUID `json:"lead_id" gorm:"type:uuid;not null;uniqueIndex"`
	IPAddress   string    `json:"ip_address" gorm:"size:45"`
	UserAgent   string    `json:"user_agent" gorm:"type:text"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null"`
}

// TableName returns the table name for LeadSubmission
func (LeadSubmission) TableName() string {
	return "lead_submissions"
}
