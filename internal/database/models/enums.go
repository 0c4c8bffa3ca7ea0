package models

// LeadAssignmentMode controls whether public intake leads are routed automatically
type LeadAssignmentMode string

const (
	LeadAssignmentAuto     LeadAssignmentMode = "auto"
	LeadAssignmentManual   LeadAssignmentMode = "manual"
	LeadAssignmentDisabled LeadAssignmentMode = "disabled"
)

// TeamType classifies which leads a team is eligible to receive
type TeamType string

const (
	TeamTypeSales   TeamType = "sales"
	TeamTypeSupport TeamType = "support"
)

// AgentRole is the functional role of an agent
type AgentRole string

const (
	AgentRoleSales   AgentRole = "sales"
	AgentRoleSupport AgentRole = "support"
)

// FinancialProduct is the product a lead is interested in
type FinancialProduct string

const (
	ProductLoan       FinancialProduct = "loan"
	ProductDeposits   FinancialProduct = "deposits"
	ProductCurrency   FinancialProduct = "currency"
	ProductCreditCard FinancialProduct = "credit_card"
)

// AssignmentStatus is derived from a lead's team/agent fields
type AssignmentStatus string

const (
	AssignmentStatusUnassigned    AssignmentStatus = "unassigned"
	AssignmentStatusTeamAssigned  AssignmentStatus = "team_assigned"
	AssignmentStatusAgentAssigned AssignmentStatus = "agent_assigned"
)

// IsValid checks if the LeadAssignmentMode is valid
func (m LeadAssignmentMode) IsValid() bool {
	switch m {
	case LeadAssignmentAuto, LeadAssignmentManual, LeadAssignmentDisabled:
		return true
	}
	return false
}

// IsValid checks if the TeamType is valid
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeSales, TeamTypeSupport:
		return true
	}
	return false
}

// IsValid checks if the AgentRole is valid
func (r AgentRole) IsValid() bool {
	switch r {
	case AgentRoleSales, AgentRoleSupport:
		return true
	}
	return false
}

// IsValid checks if the FinancialProduct is valid. The empty product is allowed.
func (p FinancialProduct) IsValid() bool {
	switch p {
	case "", ProductLoan, ProductDeposits, ProductCurrency, ProductCreditCard:
		return true
	}
	return false
}

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusUnassigned, AssignmentStatusTeamAssigned, AssignmentStatusAgentAssigned:
		return true
	}
	return false
}

// SourceOfIncome is a client's main source of income
type SourceOfIncome string

const (
	IncomeEmployment SourceOfIncome = "employment"
	IncomeBusiness   SourceOfIncome = "business"
	IncomeInvestment SourceOfIncome = "investment"
	IncomeRental     SourceOfIncome = "rental"
	IncomeRoyalties  SourceOfIncome = "royalties"
	IncomeOther      SourceOfIncome = "other"
)

// IsValid checks if the SourceOfIncome is valid
func (s SourceOfIncome) IsValid() bool {
	switch s {
	case IncomeEmployment, IncomeBusiness, IncomeInvestment, IncomeRental, IncomeRoyalties, IncomeOther:
		return true
	}
	return false
}

// EmploymentType is the contract a client is employed under
type EmploymentType string

const (
	EmploymentOpenEnded        EmploymentType = "open_ended_employment"
	EmploymentFixedTerm        EmploymentType = "fixed_term_employment"
	EmploymentOpenEndedB2B     EmploymentType = "open_ended_b2b"
	EmploymentFixedTermB2B     EmploymentType = "fixed_term_b2b"
	EmploymentSpecificWork     EmploymentType = "specific_work"
	EmploymentOpenEndedService EmploymentType = "open_ended_service"
	EmploymentFixedTermService EmploymentType = "fixed_term_service"
	EmploymentNotApplicable    EmploymentType = "not_applicable"
)

// IsValid checks if the EmploymentType is valid. The empty type is allowed.
func (t EmploymentType) IsValid() bool {
	switch t {
	case "", EmploymentOpenEnded, EmploymentFixedTerm, EmploymentOpenEndedB2B, EmploymentFixedTermB2B,
		EmploymentSpecificWork, EmploymentOpenEndedService, EmploymentFixedTermService, EmploymentNotApplicable:
		return true
	}
	return false
}

// BankProductType is the kind of product a bank offers
type BankProductType string

const (
	BankProductMortgageLoan BankProductType = "mortgage_loan"
	BankProductPersonalLoan BankProductType = "personal_loan"
	BankProductCreditCard   BankProductType = "credit_card"
	BankProductInvestments  BankProductType = "investments"
)

// IsValid checks if the BankProductType is valid
func (t BankProductType) IsValid() bool {
	switch t {
	case BankProductMortgageLoan, BankProductPersonalLoan, BankProductCreditCard, BankProductInvestments:
		return true
	}
	return false
}

// SaleStatus tracks a sale through the bank's decision
type SaleStatus string

const (
	SaleStatusNew         SaleStatus = "new"
	SaleStatusPending     SaleStatus = "pending"
	SaleStatusApproved    SaleStatus = "approved"
	SaleStatusRejected    SaleStatus = "rejected"
	SaleStatusManualCheck SaleStatus = "manual_check"
)

// IsValid checks if the SaleStatus is valid
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusNew, SaleStatusPending, SaleStatusApproved, SaleStatusRejected, SaleStatusManualCheck:
		return true
	}
	return false
}
