package models

import (
	"github.com/google/uuid"
)

// TeamAssignmentCursor remembers the last team that received a lead for a
// (company, team type) pair.
type TeamAssignmentCursor struct {
	BaseModel
	CompanyID     uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_cursor_key"`
	TeamType      TeamType   `json:"team_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_team_cursor_key"`
	CurrentTeamID *uuid.UUID `json:"current_team_id,omitempty" gorm:"type:uuid"`

	Company     *Company `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	CurrentTeam *Team    `json:"-" gorm:"foreignKey:CurrentTeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TeamAssignmentCursor
func (TeamAssignmentCursor) TableName() string {
	return "team_assignment_cursors"
}

// AgentAssignmentCursor remembers the last agent that received a lead within a
// team. Positions holds the last agent per company routed through the team.
type AgentAssignmentCursor struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;uniqueIndex"`
	CurrentAgentID *uuid.UUID `json:"current_agent_id,omitempty" gorm:"type:uuid"`

	Team         *Team                 `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	CurrentAgent *Agent                `json:"-" gorm:"foreignKey:CurrentAgentID;constraint:OnDelete:SET NULL"`
	Positions    []AgentCursorPosition `json:"positions,omitempty" gorm:"foreignKey:CursorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AgentAssignmentCursor
func (AgentAssignmentCursor) TableName() string {
	return "agent_assignment_cursors"
}

// AgentCursorPosition is the last agent of a team cursor chosen for one company.
// It is only written while the owning cursor row is locked.
type AgentCursorPosition struct {
	BaseModel
	CursorID  uuid.UUID  `json:"cursor_id" gorm:"type:uuid;not null;uniqueIndex:idx_agent_cursor_position"`
	CompanyID uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_agent_cursor_position"`
	AgentID   *uuid.UUID `json:"agent_id,omitempty" gorm:"type:uuid"`

	Company *Company `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Agent   *Agent   `json:"-" gorm:"foreignKey:AgentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AgentCursorPosition
func (AgentCursorPosition) TableName() string {
	return "agent_cursor_positions"
}
