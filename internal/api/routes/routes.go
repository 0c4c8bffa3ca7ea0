package routes

import (
	"fmt"
	"time"

	"lead-crm-backend/internal/api/handlers"
	"lead-crm-backend/internal/api/middleware"
	"lead-crm-backend/internal/auth"
	"lead-crm-backend/internal/config"
	"lead-crm-backend/internal/database/models"
	"lead-crm-backend/internal/logger"
	"lead-crm-backend/internal/ratelimit"
	"lead-crm-backend/internal/repository"
	"lead-crm-backend/internal/service"
	"lead-crm-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const intakeRateLimitPrefix = "intake:"

// SetupRoutes configures all the routes for the application. redisClient may
// be nil, in which case intake submissions are not rate limited.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	cursorRepo := repository.NewAssignmentCursorRepository(db)
	clientRepo := repository.NewClientRepository(db)
	bankRepo := repository.NewBankRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	var limiter ratelimit.Limiter = ratelimit.NoopLimiter{}
	if redisClient != nil && cfg.IntakeRateLimit > 0 {
		limiter = ratelimit.NewRedisLimiter(redisClient, intakeRateLimitPrefix, cfg.IntakeRateLimit, time.Minute)
	} else {
		logger.New().Info("Intake rate limiting disabled")
	}

	// Initialize services
	distributionService := service.NewDistributionService(companyRepo, teamRepo, agentRepo, cursorRepo)
	intakeService := service.NewIntakeService(companyRepo, leadRepo, distributionService, limiter, validator, service.IntakeConfig{
		FallbackCompanyPath: cfg.IntakeFallbackCompanyPath,
		TeamType:            models.TeamType(cfg.IntakeTeamType),
	})
	companyService := service.NewCompanyService(companyRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, validator)
	agentService := service.NewAgentService(agentRepo, teamRepo, validator)
	leadService := service.NewLeadService(leadRepo, teamRepo, agentRepo, validator)
	clientService := service.NewClientService(clientRepo, leadRepo, validator)
	bankService := service.NewBankService(bankRepo, validator)
	saleService := service.NewSaleService(saleRepo, clientRepo, bankRepo, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	distributionHandler := handlers.NewDistributionHandler(distributionService, validator)
	companyHandler := handlers.NewCompanyHandler(companyService)
	teamHandler := handlers.NewTeamHandler(teamService)
	agentHandler := handlers.NewAgentHandler(agentService)
	leadHandler := handlers.NewLeadHandler(leadService)
	clientHandler := handlers.NewClientHandler(clientService)
	bankHandler := handlers.NewBankHandler(bankService)
	saleHandler := handlers.NewSaleHandler(saleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public lead forms post here without authentication
	v1.POST("/public/intake/*path", intakeHandler.SubmitLead)

	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())

	viewDirectory := authMiddleware.RequireCapability(auth.CapViewDirectory)
	manageDirectory := authMiddleware.RequireCapability(auth.CapManageDirectory)
	viewClients := authMiddleware.RequireCapability(auth.CapViewClients)
	manageClients := authMiddleware.RequireCapability(auth.CapManageClients)
	viewBanks := authMiddleware.RequireCapability(auth.CapViewBanks)
	manageBanks := authMiddleware.RequireCapability(auth.CapManageBanks)
	manageSales := authMiddleware.RequireCapability(auth.CapManageSales)

	{
		// Company routes
		companies := api.Group("/companies")
		{
			companies.GET("", viewDirectory, companyHandler.ListCompanies)
			companies.POST("", manageDirectory, companyHandler.CreateCompany)
			companies.GET("/:id", viewDirectory, companyHandler.GetCompany)
			companies.PUT("/:id", manageDirectory, companyHandler.UpdateCompany)
			companies.DELETE("/:id", manageDirectory, companyHandler.DeleteCompany)
			companies.GET("/:id/teams", viewDirectory, companyHandler.GetCompanyTeams)
			companies.POST("/:id/teams", manageDirectory, companyHandler.LinkTeam)
			companies.PUT("/:id/teams/:team_id", manageDirectory, companyHandler.UpdateTeamLink)
			companies.DELETE("/:id/teams/:team_id", manageDirectory, companyHandler.UnlinkTeam)
			companies.GET("/:id/agents", viewDirectory, companyHandler.GetCompanyAgents)
		}

		// Team routes
		teams := api.Group("/teams")
		{
			teams.GET("", viewDirectory, teamHandler.ListTeams) // Optional type parameter
			teams.POST("", manageDirectory, teamHandler.CreateTeam)
			teams.GET("/:id", viewDirectory, teamHandler.GetTeam)
			teams.PUT("/:id", manageDirectory, teamHandler.UpdateTeam)
			teams.DELETE("/:id", manageDirectory, teamHandler.DeleteTeam)
			teams.GET("/:id/agents", viewDirectory, teamHandler.GetTeamAgents)
			teams.GET("/:id/companies", viewDirectory, teamHandler.GetTeamCompanies)
		}

		// Agent routes
		agents := api.Group("/agents")
		{
			agents.GET("", viewDirectory, agentHandler.ListAgents)
			agents.POST("", manageDirectory, agentHandler.CreateAgent)
			agents.GET("/:id", viewDirectory, agentHandler.GetAgent)
			agents.PUT("/:id", manageDirectory, agentHandler.UpdateAgent)
			agents.DELETE("/:id", manageDirectory, agentHandler.DeleteAgent)
			agents.POST("/:id/companies", manageDirectory, agentHandler.AssignCompanies)
			agents.DELETE("/:id/companies", manageDirectory, agentHandler.UnassignCompanies)
			agents.GET("/:id/assignable-companies", viewDirectory, agentHandler.GetAssignableCompanies)
		}

		// Lead routes
		leads := api.Group("/leads")
		{
			viewLeads := authMiddleware.RequireCapability(auth.CapViewLeads)
			manageLeads := authMiddleware.RequireCapability(auth.CapManageLeads)

			leads.GET("", viewLeads, leadHandler.ListLeads)
			leads.GET("/:id", viewLeads, leadHandler.GetLead)
			leads.PUT("/:id", manageLeads, leadHandler.UpdateLead)
			leads.DELETE("/:id", manageLeads, leadHandler.DeleteLead)
			leads.PUT("/:id/assignment", authMiddleware.RequireCapability(auth.CapAssignLeads), leadHandler.AssignLead)
			leads.GET("/:id/submission", viewLeads, leadHandler.GetLeadSubmission)
			leads.POST("/:id/client", manageClients, clientHandler.ConvertLead)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.GET("", viewClients, clientHandler.ListClients)
			clients.POST("", manageClients, clientHandler.CreateClient)
			clients.GET("/:id", viewClients, clientHandler.GetClient)
			clients.PUT("/:id", manageClients, clientHandler.UpdateClient)
			clients.DELETE("/:id", authMiddleware.RequireCapability(auth.CapDeleteClients), clientHandler.DeleteClient)
			clients.POST("/:id/process", manageClients, clientHandler.ProcessClient)
			clients.GET("/:id/calculations", viewClients, saleHandler.GetCalculations)
			clients.POST("/:id/calculations", manageSales, saleHandler.Calculate)
		}

		// Bank routes
		banks := api.Group("/banks")
		{
			banks.GET("", viewBanks, bankHandler.ListBanks)
			banks.POST("", manageBanks, bankHandler.CreateBank)
			banks.GET("/:id", viewBanks, bankHandler.GetBank)
			banks.PUT("/:id", manageBanks, bankHandler.UpdateBank)
			banks.DELETE("/:id", manageBanks, bankHandler.DeleteBank)
		}

		products := api.Group("/bank-products")
		{
			products.GET("", viewBanks, bankHandler.ListProducts)
			products.POST("", manageBanks, bankHandler.CreateProduct)
			products.GET("/:id", viewBanks, bankHandler.GetProduct)
			products.PUT("/:id", manageBanks, bankHandler.UpdateProduct)
			products.DELETE("/:id", manageBanks, bankHandler.DeleteProduct)
		}

		// Sale routes
		sales := api.Group("/sales")
		{
			sales.GET("", viewClients, saleHandler.ListSales)
			sales.POST("", manageSales, saleHandler.CreateSale)
			sales.GET("/:id", viewClients, saleHandler.GetSale)
			sales.PUT("/:id", manageSales, saleHandler.UpdateSale)
			sales.DELETE("/:id", manageSales, saleHandler.DeleteSale)
		}

		// Distribution routes
		distribution := api.Group("/distribution")
		{
			runDistribution := authMiddleware.RequireCapability(auth.CapRunDistribution)

			distribution.GET("/cursors", authMiddleware.RequireCapability(auth.CapViewDistribution), distributionHandler.GetCursors)
			distribution.POST("/select-team", runDistribution, distributionHandler.SelectTeam)
			distribution.POST("/select-agent", runDistribution, distributionHandler.SelectAgent)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
