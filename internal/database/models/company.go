package models

import (
	"gorm.io/gorm"
)

// Company is a tenant whose public intake form produces leads
type Company struct {
	BaseModel
	Name           string             `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Slug           string             `json:"slug" gorm:"uniqueIndex;size:50"`
	Path           string             `json:"path" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"` // public intake path, e.g. /bank-finanse/
	Website        string             `json:"website" gorm:"uniqueIndex;not null;size:200" validate:"required,url,max=200"`
	LeadAssignment LeadAssignmentMode `json:"lead_assignment" gorm:"type:varchar(20);not null;default:'manual'"`

	// Relationships
	TeamLinks []TeamCompany `json:"team_links,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}

// BeforeCreate assigns the UUID and a unique slug derived from the name
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if err := c.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if c.LeadAssignment == "" {
		c.LeadAssignment = LeadAssignmentManual
	}
	if c.Slug != "" {
		return nil
	}
	slug, err := uniqueSlug(tx, &Company{}, Slugify(c.Name), 50)
	if err != nil {
		return err
	}
	c.Slug = slug
	return nil
}
