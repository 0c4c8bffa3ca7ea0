package testutils

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"lead-crm-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "crm"
	pgPassword = "crm-test"
	pgDatabase = "lead_crm_test"
)

// crmTables lists every table the models migrate, children first
var crmTables = []string{
	"calculations",
	"sales",
	"clients",
	"bank_products",
	"banks",
	"agent_cursor_positions",
	"agent_assignment_cursors",
	"team_assignment_cursors",
	"lead_submissions",
	"leads",
	"agent_companies",
	"agents",
	"team_companies",
	"teams",
	"companies",
}

// postgresContainer is the one Postgres instance shared by every suite in the process
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

var shared postgresContainer

// BaseTestSuite gives a suite access to the shared, migrated test database
type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupTestSuite starts the shared Postgres container on first use and
// returns a handle to it. The container lives until CleanupSharedContainer.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start test database: %v", shared.err)
	}
	s := &BaseTestSuite{DB: shared.db}
	s.CleanTestDB()
	return s
}

// RunMain runs m and purges the shared container afterwards, also when the
// run is interrupted. Packages with integration suites call it from TestMain.
func RunMain(m *testing.M) int {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		<-sigs
		log.Println("Interrupted, removing test database container")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the shared connection and purges the container
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool != nil && shared.resource != nil {
		if err := shared.pool.Purge(shared.resource); err != nil {
			log.Printf("WARN: could not purge %s: %v", shared.resource.Container.Name, err)
		}
		shared.resource = nil
		shared.pool = nil
	}
}

// SetupTest and TearDownTest give every test an empty schema
func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables a suite wrote to. The container stays
// up for the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates all CRM tables
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	var present []string
	for _, table := range crmTables {
		if migrator.HasTable(table) {
			present = append(present, fmt.Sprintf("%q", table))
		}
	}
	if len(present) == 0 {
		return
	}
	stmt := "TRUNCATE TABLE " + strings.Join(present, ", ") + " RESTART IDENTITY CASCADE"
	if err := s.DB.Exec(stmt).Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// Connect without migrating until Postgres accepts connections
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Silent, SkipMigrate: true})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Warn})
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db

	log.Printf("Test database ready on port %s", resource.GetPort("5432/tcp"))
	return nil
}
