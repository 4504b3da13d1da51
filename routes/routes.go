package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	"coldreach/config"
	controller "coldreach/controllers"
	"coldreach/middleware"
	"coldreach/repository"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewGormUserRepository(db)

	// Initialize controllers with their respective loggers
	authController := controller.NewAuthController(users, log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile))
	aiController := controller.NewAIController(config.AppConfig.OpenAIAPIKey, log.New(os.Stdout, "AI: ", log.LstdFlags))
	campaignController := controller.NewCampaignController(db, log.New(os.Stdout, "CAMPAIGN: ", log.LstdFlags))
	contactController := controller.NewContactController(db, log.New(os.Stdout, "CONTACT: ", log.LstdFlags))
	accountController := controller.NewAccountController(db, log.New(os.Stdout, "ACCOUNT: ", log.LstdFlags))
	automationController := controller.NewAutomationController(db, log.New(os.Stdout, "AUTOMATION: ", log.LstdFlags))
	dashboardController := controller.NewDashboardController(db, log.New(os.Stdout, "DASHBOARD: ", log.LstdFlags))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public auth endpoints
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)

	// Protected auth endpoints
	protectedAuth := auth.Group("", middleware.Protected(users))
	protectedAuth.Get("/me", authController.GetCurrentUser)

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(users), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", dashboardController.GetDashboardStats)

	// AI content generation with rate limiting
	ai := api.Group("/ai", middleware.AIRateLimiter())
	ai.Post("/generate-email", aiController.GenerateEmail)

	// Campaign routes
	campaign := api.Group("/campaigns")
	campaign.Post("/", campaignController.CreateCampaign)
	campaign.Get("/", campaignController.GetCampaigns)
	campaign.Get("/:id", campaignController.GetCampaign)
	campaign.Put("/:id", campaignController.UpdateCampaign)
	campaign.Post("/:id/launch", campaignController.LaunchCampaign)
	campaign.Post("/:id/toggle", campaignController.ToggleCampaign)
	campaign.Get("/:id/stats", campaignController.GetCampaignStats)
	campaign.Delete("/:id", campaignController.DeleteCampaign)
	campaign.Post("/preview-step", campaignController.PreviewStep)

	// WebSocket route for campaign progress
	app.Get("/api/v1/campaigns/progress", websocket.New(func(c *websocket.Conn) {
		controller.HandleCampaignProgressWS(c)
	}))

	// Contact routes
	contact := api.Group("/contacts")
	contact.Post("/", contactController.CreateContact)
	contact.Get("/", contactController.GetContacts)
	contact.Get("/:id", contactController.GetContact)
	contact.Put("/:id", contactController.UpdateContact)
	contact.Delete("/:id", contactController.DeleteContact)
	contact.Post("/import", contactController.ImportContacts)
	contact.Post("/bulk", contactController.BulkAction)

	// Contact list routes
	contactList := api.Group("/contact-lists")
	contactList.Post("/", contactController.CreateContactList)
	contactList.Get("/", contactController.GetContactLists)
	contactList.Delete("/:id", contactController.DeleteContactList)

	// Email account routes
	account := api.Group("/accounts")
	account.Post("/", accountController.CreateAccount)
	account.Get("/", accountController.GetAccounts)
	account.Delete("/:id", accountController.DeleteAccount)
	account.Get("/connect/:provider", accountController.GetConnectURL)
	account.Post("/:id/warmup", accountController.ToggleWarmup)

	// Automation rule routes
	automation := api.Group("/automation")
	automation.Get("/rules", automationController.GetRules)
	automation.Post("/rules/:id/toggle", automationController.ToggleRule)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("API routes initialized successfully")
}
