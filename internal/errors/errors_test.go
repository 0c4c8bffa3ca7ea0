package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "lead submission not found", ErrLeadSubmissionNotFound.Error())
	})

	t.Run("errors.Is matches on entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "team"}, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrAgentNotFound))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to resolve company: %w", ErrCompanyNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrCompanyNotFound))
		assert.False(t, IsNotFound(ErrAgentNotInTeam))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "agent already exists with this email", ErrAgentExists.Error())
		assert.Equal(t, "team-company link already exists", ErrTeamCompanyExists.Error())
	})

	t.Run("errors.Is ignores the unique column", func(t *testing.T) {
		assert.True(t, errors.Is(&AlreadyExistsError{Entity: "team"}, ErrTeamExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrCompanyExists)))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("phone_number", "invalid phone number")
		assert.Equal(t, "validation error: phone_number - invalid phone number", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "message too long"}
		assert.Equal(t, "validation error: message too long", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(fmt.Errorf("validation failed: %w", NewValidationError("first_name", "required"))))
		assert.False(t, IsValidation(ErrInvalidTeamType))
	})
}

func TestInvalidValueError(t *testing.T) {
	assert.Equal(t, "invalid team type", ErrInvalidTeamType.Error())
	assert.Equal(t, "invalid financial product", ErrInvalidProduct.Error())
	assert.True(t, IsInvalidValue(fmt.Errorf("list teams: %w", ErrInvalidTeamType)))
	assert.False(t, errors.Is(ErrInvalidTeamType, ErrInvalidAgentRole))
	assert.False(t, IsInvalidValue(ErrAgentHasNoTeam))
}

func TestRuleError(t *testing.T) {
	rules := []error{
		ErrAgentNotInTeam,
		ErrAgentHasNoTeam,
		ErrCompanyNotServedByTeam,
		ErrNoCompaniesToAssign,
		ErrNoCompaniesToUnassign,
		ErrAgentCompanyNotAssigned,
	}
	for _, rule := range rules {
		assert.True(t, IsRuleViolation(fmt.Errorf("assign: %w", rule)), rule.Error())
	}
	assert.False(t, IsRuleViolation(ErrIntakeRateLimited))
	assert.False(t, errors.Is(ErrAgentNotInTeam, ErrAgentHasNoTeam))
}

func TestAuthErrors(t *testing.T) {
	var authn *AuthenticationError
	var authz *AuthorizationError
	var cfg *ConfigurationError

	assert.True(t, errors.As(fmt.Errorf("parse: %w", ErrInvalidToken), &authn))
	assert.True(t, errors.As(ErrUnknownRole, &authz))
	assert.True(t, errors.As(ErrJWTSecretNotSet, &cfg))
	assert.False(t, errors.As(ErrInvalidToken, &authz))
}
