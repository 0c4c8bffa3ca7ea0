package repository

import (
	"context"
	"errors"

	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxCursorAttempts bounds retries of a cursor transaction aborted by Postgres
// with a serialization failure or deadlock.
const maxCursorAttempts = 3

// AssignmentCursorRepository handles database operations for rotation cursors
type AssignmentCursorRepository struct {
	db *gorm.DB
}

// NewAssignmentCursorRepository creates a new assignment cursor repository
func NewAssignmentCursorRepository(db *gorm.DB) *AssignmentCursorRepository {
	return &AssignmentCursorRepository{db: db}
}

// AdvanceTeamCursor locks the (company, team type) cursor, creating it when
// missing, and stores the value returned by advance.
func (r *AssignmentCursorRepository) AdvanceTeamCursor(ctx context.Context, companyID uuid.UUID, teamType models.TeamType, advance CursorAdvanceFunc) (*uuid.UUID, error) {
	var next *uuid.UUID
	err := r.inTransaction(ctx, func(tx *gorm.DB) error {
		seed := models.TeamAssignmentCursor{CompanyID: companyID, TeamType: teamType}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "team_type"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		var cursor models.TeamAssignmentCursor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("company_id = ? AND team_type = ?", companyID, teamType).
			First(&cursor).Error; err != nil {
			return err
		}

		next = advance(cursor.CurrentTeamID)
		return tx.Model(&cursor).Update("current_team_id", next).Error
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// AdvanceAgentCursor locks the team's agent cursor, creating it when missing,
// and stores the value returned by advance as both the team's current agent
// and the company's position. advance receives the company's position, or the
// team's current agent when the company has none yet.
func (r *AssignmentCursorRepository) AdvanceAgentCursor(ctx context.Context, teamID, companyID uuid.UUID, advance CursorAdvanceFunc) (*uuid.UUID, error) {
	var next *uuid.UUID
	err := r.inTransaction(ctx, func(tx *gorm.DB) error {
		seed := models.AgentAssignmentCursor{TeamID: teamID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		var cursor models.AgentAssignmentCursor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("team_id = ?", teamID).
			First(&cursor).Error; err != nil {
			return err
		}

		var positions []models.AgentCursorPosition
		if err := tx.Where("cursor_id = ? AND company_id = ?", cursor.ID, companyID).
			Limit(1).Find(&positions).Error; err != nil {
			return err
		}
		current := cursor.CurrentAgentID
		if len(positions) > 0 {
			current = positions[0].AgentID
		}

		next = advance(current)
		if err := tx.Model(&cursor).Update("current_agent_id", next).Error; err != nil {
			return err
		}
		position := models.AgentCursorPosition{CursorID: cursor.ID, CompanyID: companyID, AgentID: next}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cursor_id"}, {Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"agent_id", "updated_at"}),
		}).Create(&position).Error
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// GetTeamCursors retrieves all team cursors of a company
func (r *AssignmentCursorRepository) GetTeamCursors(companyID uuid.UUID) ([]models.TeamAssignmentCursor, error) {
	var cursors []models.TeamAssignmentCursor
	err := r.db.Where("company_id = ?", companyID).Order("team_type ASC").Find(&cursors).Error
	return cursors, err
}

// GetAgentCursor retrieves the agent cursor of a team with its company positions
func (r *AssignmentCursorRepository) GetAgentCursor(teamID uuid.UUID) (*models.AgentAssignmentCursor, error) {
	var cursor models.AgentAssignmentCursor
	err := r.db.Preload("Positions").First(&cursor, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

func (r *AssignmentCursorRepository) inTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= maxCursorAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(fn)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}

// isRetryableTxError reports whether Postgres aborted the transaction with
// serialization_failure (40001) or deadlock_detected (40P01).
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
