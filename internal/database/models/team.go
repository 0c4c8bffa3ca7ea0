package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is a group of agents of one type serving zero or more companies
type Team struct {
	BaseModel
	Name string   `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Type TeamType `json:"type" gorm:"type:varchar(20);not null;index" validate:"required"`
	Slug string   `json:"slug" gorm:"uniqueIndex;size:30"`

	// Relationships
	Agents       []Agent       `json:"agents,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	CompanyLinks []TeamCompany `json:"company_links,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate assigns the UUID and a unique type-prefixed slug
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if err := t.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if t.Slug != "" {
		return nil
	}
	prefix := "st"
	if t.Type == TeamTypeSupport {
		prefix = "sst"
	}
	slug, err := uniqueSlug(tx, &Team{}, Slugify(prefix+"-"+t.Name), 30)
	if err != nil {
		return err
	}
	t.Slug = slug
	return nil
}

// TeamCompany links a team to a company it serves. Each link carries its own
// assignment mode; only auto links take part in round-robin distribution.
type TeamCompany struct {
	TeamID         uuid.UUID          `json:"team_id" gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID          `json:"company_id" gorm:"type:uuid;primaryKey;index"`
	LeadAssignment LeadAssignmentMode `json:"lead_assignment" gorm:"type:varchar(20);not null;default:'auto'"`

	Team    *Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamCompany
func (TeamCompany) TableName() string {
	return "team_companies"
}
