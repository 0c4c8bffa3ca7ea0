package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lead-crm-backend/internal/config"
	"lead-crm-backend/internal/database"
	"lead-crm-backend/internal/database/models"
	"lead-crm-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name           string `yaml:"name"`
	Path           string `yaml:"path"`
	Website        string `yaml:"website"`
	LeadAssignment string `yaml:"lead_assignment"`
}

type TeamData struct {
	Name      string            `yaml:"name"`
	Type      string            `yaml:"type"`
	Companies []TeamCompanyData `yaml:"companies,omitempty"`
}

type TeamCompanyData struct {
	Name           string `yaml:"name"`
	LeadAssignment string `yaml:"lead_assignment,omitempty"`
}

type AgentData struct {
	FirstName   string   `yaml:"first_name"`
	LastName    string   `yaml:"last_name"`
	Email       string   `yaml:"email"`
	PhoneNumber string   `yaml:"phone_number,omitempty"`
	Role        string   `yaml:"role"`
	TeamName    string   `yaml:"team_name,omitempty"`
	Companies   []string `yaml:"companies,omitempty"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type AgentsFile struct {
	Agents []AgentData `yaml:"agents"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var companies []CompanyData
	if err := loadYAML(dataDir, "companies", func(data []byte) error {
		var file CompaniesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		companies = append(companies, file.Companies...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	var teams []TeamData
	if err := loadYAML(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teams = append(teams, file.Teams...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var agents []AgentData
	if err := loadYAML(dataDir, "agents", func(data []byte) error {
		var file AgentsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		agents = append(agents, file.Agents...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		companyMap := make(map[string]*models.Company)
		created := 0
		for _, data := range companies {
			company, isNew, err := createCompany(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create company %s: %w", data.Name, err)
			}
			companyMap[data.Name] = company
			if isNew {
				created++
			}
		}
		log.Printf("Companies: %d created, %d total", created, len(companies))

		teamMap := make(map[string]*models.Team)
		created = 0
		links := 0
		for _, data := range teams {
			team, isNew, err := createTeam(tx, data)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", data.Name, err)
			}
			teamMap[data.Name] = team
			if isNew {
				created++
			}

			n, err := linkTeamCompanies(tx, team, data.Companies, companyMap)
			if err != nil {
				return fmt.Errorf("failed to link team %s: %w", data.Name, err)
			}
			links += n
		}
		log.Printf("Teams: %d created, %d total, %d company links", created, len(teams), links)

		created = 0
		for _, data := range agents {
			isNew, err := createAgent(tx, data, teamMap, companyMap)
			if err != nil {
				return fmt.Errorf("failed to create agent %s: %w", data.Email, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("Agents: %d created, %d total", created, len(agents))

		return nil
	})
}

// loadYAML passes every .yaml file under dataDir whose name contains kind to decode
func loadYAML(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var company models.Company
	err := db.Where("name = ?", data.Name).First(&company).Error
	if err == nil {
		return &company, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query company: %w", err)
	}

	company = models.Company{
		Name:           data.Name,
		Path:           service.NormalizePath(data.Path),
		Website:        data.Website,
		LeadAssignment: models.LeadAssignmentMode(data.LeadAssignment),
	}
	if company.LeadAssignment != "" && !company.LeadAssignment.IsValid() {
		return nil, false, fmt.Errorf("invalid lead_assignment %q", data.LeadAssignment)
	}
	if err := db.Create(&company).Error; err != nil {
		return nil, false, err
	}
	return &company, true, nil
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", data.Name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{Name: data.Name, Type: models.TeamType(data.Type)}
	if !team.Type.IsValid() {
		return nil, false, fmt.Errorf("invalid team type %q", data.Type)
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

func linkTeamCompanies(db *gorm.DB, team *models.Team, companies []TeamCompanyData, companyMap map[string]*models.Company) (int, error) {
	linked := 0
	for _, data := range companies {
		company, ok := companyMap[data.Name]
		if !ok {
			return linked, fmt.Errorf("unknown company %q", data.Name)
		}
		mode := models.LeadAssignmentMode(data.LeadAssignment)
		if mode == "" {
			mode = models.LeadAssignmentAuto
		}
		link := models.TeamCompany{TeamID: team.ID, CompanyID: company.ID, LeadAssignment: mode}
		result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
		if result.Error != nil {
			return linked, result.Error
		}
		linked += int(result.RowsAffected)
	}
	return linked, nil
}

func createAgent(db *gorm.DB, data AgentData, teamMap map[string]*models.Team, companyMap map[string]*models.Company) (bool, error) {
	var existing models.Agent
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query agent: %w", err)
	}

	agent := models.Agent{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        models.AgentRole(data.Role),
	}
	if data.TeamName != "" {
		team, ok := teamMap[data.TeamName]
		if !ok {
			return false, fmt.Errorf("unknown team %q", data.TeamName)
		}
		agent.TeamID = &team.ID
	}
	for _, name := range data.Companies {
		company, ok := companyMap[name]
		if !ok {
			return false, fmt.Errorf("unknown company %q", name)
		}
		agent.Companies = append(agent.Companies, *company)
	}

	// Companies already exist, only the join rows are written
	if err := db.Omit("Companies.*").Create(&agent).Error; err != nil {
		return false, err
	}
	return true, nil
}
