package testutils

import (
	"fmt"
	"time"

	"lead-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with unique name, path and website
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	short := id.String()[:8]
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Test Company " + short,
		Path:           "/company-" + short + "/",
		Website:        "https://" + short + ".example.com",
		LeadAssignment: models.LeadAssignmentAuto,
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// WithPath sets a custom intake path for the company
func (f *CompanyFactory) WithPath(path string) *models.Company {
	company := f.Create()
	company.Path = path
	return company
}

// WithAssignment sets the company-level lead assignment mode
func (f *CompanyFactory) WithAssignment(mode models.LeadAssignmentMode) *models.Company {
	company := f.Create()
	company.LeadAssignment = mode
	return company
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test support Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Team " + id.String()[:8],
		Type: models.TeamTypeSupport,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithType sets the team type
func (f *TeamFactory) WithType(teamType models.TeamType) *models.Team {
	team := f.Create()
	team.Type = teamType
	return team
}

// CreatedAt returns a team whose creation time is fixed, for rotation order tests
func (f *TeamFactory) CreatedAt(name string, teamType models.TeamType, at time.Time) *models.Team {
	team := f.WithType(teamType)
	team.Name = name
	team.CreatedAt = at
	return team
}

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent without a team
func (f *AgentFactory) Create() *models.Agent {
	id := uuid.New()
	short := id.String()[:8]
	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       fmt.Sprintf("agent.%s@example.com", short),
		PhoneNumber: "+48 600 100 200",
		Role:        models.AgentRoleSupport,
	}
}

// WithTeam sets the team of the agent
func (f *AgentFactory) WithTeam(teamID uuid.UUID) *models.Agent {
	agent := f.Create()
	agent.TeamID = &teamID
	return agent
}

// CreatedAt returns an agent of the team whose creation time is fixed
func (f *AgentFactory) CreatedAt(teamID uuid.UUID, firstName string, at time.Time) *models.Agent {
	agent := f.WithTeam(teamID)
	agent.FirstName = firstName
	agent.CreatedAt = at
	return agent
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates an unassigned test Lead
func (f *LeadFactory) Create() *models.Lead {
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:   "Anna",
		PhoneNumber: "+48 500 600 700",
		Message:     "Please call me back",
		Product:     models.ProductLoan,
	}
}

// WithCompany sets the company of the lead
func (f *LeadFactory) WithCompany(companyID uuid.UUID) *models.Lead {
	lead := f.Create()
	lead.CompanyID = &companyID
	return lead
}

// WithEmail sets the email of the lead
func (f *LeadFactory) WithEmail(email string) *models.Lead {
	lead := f.Create()
	lead.Email = &email
	return lead
}

// ClientFactory provides methods to create test Client data
type ClientFactory struct{}

// NewClientFactory creates a new ClientFactory
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Create creates a test Client with a unique email and phone number
func (f *ClientFactory) Create() *models.Client {
	id := uuid.New()
	return &models.Client{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:      "Ewa",
		LastName:       "Nowak",
		Email:          fmt.Sprintf("client.%s@example.com", id.String()[:8]),
		PhoneNumber:    fmt.Sprintf("+48 %09d", id.ID()%1000000000),
		BirthDate:      time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
		Salary:         decimal.NewFromInt(8000),
		SourceOfIncome: models.IncomeEmployment,
		EmploymentType: models.EmploymentOpenEnded,
		Liabilities:    decimal.NewFromInt(500),
		LivingExpenses: decimal.NewFromInt(2500),
		RatePerMonth:   decimal.NewFromInt(700),
	}
}

// WithOwner sets the team and agent that own the client
func (f *ClientFactory) WithOwner(teamID, agentID *uuid.UUID) *models.Client {
	client := f.Create()
	client.TeamID = teamID
	client.AgentID = agentID
	return client
}

// BankFactory provides methods to create test Bank and BankProduct data
type BankFactory struct{}

// NewBankFactory creates a new BankFactory
func NewBankFactory() *BankFactory {
	return &BankFactory{}
}

// Create creates a test Bank with a unique name
func (f *BankFactory) Create() *models.Bank {
	id := uuid.New()
	established := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Bank{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Bank " + id.String()[:8],
		Headquarters:    "Warszawa",
		CustomerService: "801 100 100",
		Established:     &established,
		Chairman:        "Maria Zielinska",
	}
}

// Product creates a product of bankID with the yearly rate in percent
func (f *BankFactory) Product(bankID uuid.UUID, productType models.BankProductType, rate string) *models.BankProduct {
	interest := decimal.RequireFromString(rate)
	return &models.BankProduct{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BankID:       bankID,
		ProductType:  productType,
		Description:  "Test product",
		InterestRate: &interest,
		Terms:        "Standard terms",
	}
}

// SaleFactory provides methods to create test Sale data
type SaleFactory struct{}

// NewSaleFactory creates a new SaleFactory
func NewSaleFactory() *SaleFactory {
	return &SaleFactory{}
}

// Create creates a new sale of productID to clientID
func (f *SaleFactory) Create(clientID, productID uuid.UUID) *models.Sale {
	return &models.Sale{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClientID:      clientID,
		BankProductID: productID,
		SaleDate:      time.Now(),
		Amount:        decimal.NewFromInt(50000),
		DurationYears: 5,
		Status:        models.SaleStatusNew,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company *CompanyFactory
	Team    *TeamFactory
	Agent   *AgentFactory
	Lead    *LeadFactory
	Client  *ClientFactory
	Bank    *BankFactory
	Sale    *SaleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company: NewCompanyFactory(),
		Team:    NewTeamFactory(),
		Agent:   NewAgentFactory(),
		Lead:    NewLeadFactory(),
		Client:  NewClientFactory(),
		Bank:    NewBankFactory(),
		Sale:    NewSaleFactory(),
	}
}
