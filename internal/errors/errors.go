package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when an entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is matches any NotFoundError for the same entity
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && e.Entity == t.Entity
}

// AlreadyExistsError is returned when a unique column would be duplicated
type AlreadyExistsError struct {
	Entity string
	Unique string // e.g. "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Unique == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s already exists %s", e.Entity, e.Unique)
}

// Is matches any AlreadyExistsError for the same entity
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	return ok && e.Entity == t.Entity
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation error: " + e.Message
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// InvalidValueError is returned for a value outside a closed set, such as an
// unknown team type in a query string.
type InvalidValueError struct {
	What string
}

func (e *InvalidValueError) Error() string {
	return "invalid " + e.What
}

// RuleError is returned when a request is well formed but breaks a rule
// between existing records, such as assigning an agent to a company its team
// does not serve.
type RuleError struct {
	Rule string
}

func (e *RuleError) Error() string {
	return e.Rule
}

// AuthenticationError is returned for missing or unusable credentials
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is returned when credentials are valid but not sufficient
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError is returned by config validation
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Not found
var (
	ErrCompanyNotFound        = &NotFoundError{Entity: "company"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrAgentNotFound          = &NotFoundError{Entity: "agent"}
	ErrLeadNotFound           = &NotFoundError{Entity: "lead"}
	ErrLeadSubmissionNotFound = &NotFoundError{Entity: "lead submission"}
	ErrTeamCompanyNotFound    = &NotFoundError{Entity: "team-company link"}
	ErrClientNotFound         = &NotFoundError{Entity: "client"}
	ErrBankNotFound           = &NotFoundError{Entity: "bank"}
	ErrBankProductNotFound    = &NotFoundError{Entity: "bank product"}
	ErrSaleNotFound           = &NotFoundError{Entity: "sale"}
)

// Duplicates
var (
	ErrCompanyExists     = &AlreadyExistsError{Entity: "company", Unique: "with this name, path or website"}
	ErrTeamExists        = &AlreadyExistsError{Entity: "team", Unique: "with this name"}
	ErrAgentExists       = &AlreadyExistsError{Entity: "agent", Unique: "with this email"}
	ErrLeadEmailExists   = &AlreadyExistsError{Entity: "lead", Unique: "with this email"}
	ErrTeamCompanyExists = &AlreadyExistsError{Entity: "team-company link"}
	ErrClientExists      = &AlreadyExistsError{Entity: "client", Unique: "with this email or phone number"}
	ErrBankExists        = &AlreadyExistsError{Entity: "bank", Unique: "with this name"}
	ErrCalculationExists = &AlreadyExistsError{Entity: "calculation", Unique: "for this product, amount and duration"}
)

// Rules between agents, teams and companies
var (
	ErrAgentNotInTeam          = &RuleError{Rule: "agent is not a member of this team"}
	ErrAgentHasNoTeam          = &RuleError{Rule: "agent is not assigned to any team"}
	ErrCompanyNotServedByTeam  = &RuleError{Rule: "company is not served by the agent's team"}
	ErrNoCompaniesToAssign     = &RuleError{Rule: "there are no companies available to assign to this agent"}
	ErrNoCompaniesToUnassign   = &RuleError{Rule: "there are no companies available to unassign from this agent"}
	ErrAgentCompanyNotAssigned = &RuleError{Rule: "agent is not linked to this company"}
)

// Rules on clients and their products
var (
	ErrClientProcessedRecently   = &RuleError{Rule: "client creditworthiness was processed less than 15 days ago"}
	ErrProductHasNoInterestRate  = &RuleError{Rule: "bank product has no interest rate"}
	ErrEmploymentDatesOutOfOrder = &RuleError{Rule: "employment end date is before its start date"}
)

// Closed value sets
var (
	ErrInvalidAssignmentMode   = &InvalidValueError{What: "lead assignment mode"}
	ErrInvalidTeamType         = &InvalidValueError{What: "team type"}
	ErrInvalidAgentRole        = &InvalidValueError{What: "agent role"}
	ErrInvalidProduct          = &InvalidValueError{What: "financial product"}
	ErrInvalidPaginationParams = &InvalidValueError{What: "pagination parameters"}
	ErrInvalidSaleStatus       = &InvalidValueError{What: "sale status"}
	ErrInvalidProductType      = &InvalidValueError{What: "bank product type"}
)

// ErrIntakeRateLimited is returned when a client IP exceeds the intake limit
var ErrIntakeRateLimited = errors.New("too many submissions, please try again later")

// Auth and configuration
var (
	ErrInvalidToken    = &AuthenticationError{Message: "invalid token"}
	ErrUnknownRole     = &AuthorizationError{Message: "unknown role"}
	ErrJWTSecretNotSet = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAlreadyExists reports whether err wraps an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var target *AlreadyExistsError
	return errors.As(err, &target)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsInvalidValue reports whether err wraps an InvalidValueError
func IsInvalidValue(err error) bool {
	var target *InvalidValueError
	return errors.As(err, &target)
}

// IsRuleViolation reports whether err wraps a RuleError
func IsRuleViolation(err error) bool {
	var target *RuleError
	return errors.As(err, &target)
}

// NewValidationError returns a ValidationError for field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
