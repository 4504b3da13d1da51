package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
	"gorm.io/gorm"

	"coldreach/config"
	"coldreach/models"
	"coldreach/utils"
)

type AccountController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewAccountController(db *gorm.DB, logger *log.Logger) *AccountController {
	return &AccountController{
		DB:     db,
		Logger: logger,
	}
}

// CreateAccount registers a sending identity. SMTP credentials are
// stored but never dialed here; the transport lives outside this
// service.
func (ac *AccountController) CreateAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Address      string `json:"address" validate:"required,email"`
		FromName     string `json:"from_name" validate:"omitempty,max=200"`
		Provider     string `json:"provider" validate:"required,oneof=gmail outlook smtp"`
		SMTPHost     string `json:"smtp_host"`
		SMTPPort     int    `json:"smtp_port"`
		SMTPUsername string `json:"smtp_username"`
		SMTPPassword string `json:"smtp_password"`
		DailyLimit   int    `json:"daily_limit"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if input.Provider == models.ProviderSMTP && (input.SMTPHost == "" || input.SMTPPort == 0) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "SMTP host and port are required for SMTP accounts", nil)
	}

	account := models.EmailAccount{
		UserID:       user.ID,
		Address:      input.Address,
		FromName:     input.FromName,
		Provider:     input.Provider,
		Status:       models.AccountStatusDisconnected,
		SMTPHost:     input.SMTPHost,
		SMTPPort:     input.SMTPPort,
		SMTPUsername: input.SMTPUsername,
		SMTPPassword: input.SMTPPassword,
		DailyLimit:   input.DailyLimit,
	}
	if account.DailyLimit == 0 {
		account.DailyLimit = 50
	}
	// SMTP accounts are considered connected once credentials are stored
	if account.Provider == models.ProviderSMTP {
		account.Status = models.AccountStatusConnected
	}

	if err := ac.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account", err)
	}

	account.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(account))
}

// GetAccounts lists the user's email accounts with reputation tiers
func (ac *AccountController) GetAccounts(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var accounts []models.EmailAccount
	if err := ac.DB.Where("user_id = ?", user.ID).Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch accounts", nil)
	}

	type accountResponse struct {
		models.EmailAccount
		ReputationTier string `json:"reputation_tier"`
	}

	response := make([]accountResponse, len(accounts))
	for i, account := range accounts {
		account.Sanitize()
		response[i] = accountResponse{
			EmailAccount:   account,
			ReputationTier: account.ReputationTier(),
		}
	}

	return c.JSON(utils.SuccessResponse(response))
}

// DeleteAccount removes an email account
func (ac *AccountController) DeleteAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var account models.EmailAccount
	if err := ac.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", nil)
	}

	if err := ac.DB.Delete(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete account", err)
	}

	return c.JSON(fiber.Map{"message": "Account deleted"})
}

// GetConnectURL returns the OAuth consent URL for gmail/outlook
// accounts. The token exchange itself is the identity provider's side
// of the flow and stays outside this service.
func (ac *AccountController) GetConnectURL(c *fiber.Ctx) error {
	provider := c.Params("provider")

	var oauthCfg *oauth2.Config
	switch provider {
	case models.ProviderGmail:
		oauthCfg = &oauth2.Config{
			ClientID:     config.AppConfig.Google.ClientID,
			ClientSecret: config.AppConfig.Google.ClientSecret,
			RedirectURL:  config.AppConfig.Google.RedirectURI,
			Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
			Endpoint:     google.Endpoint,
		}
	case models.ProviderOutlook:
		oauthCfg = &oauth2.Config{
			ClientID:     config.AppConfig.Microsoft.ClientID,
			ClientSecret: config.AppConfig.Microsoft.ClientSecret,
			RedirectURL:  config.AppConfig.Microsoft.RedirectURI,
			Scopes:       []string{"https://outlook.office.com/SMTP.Send"},
			Endpoint:     microsoft.AzureADEndpoint("common"),
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported provider", nil)
	}

	if oauthCfg.ClientID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "OAuth is not configured for this provider", nil)
	}

	url := oauthCfg.AuthCodeURL("state", oauth2.AccessTypeOffline)
	return c.JSON(fiber.Map{"url": url})
}

// ToggleWarmup starts or stops warmup for an account
func (ac *AccountController) ToggleWarmup(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var account models.EmailAccount
	if err := ac.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", nil)
	}

	updates := map[string]interface{}{}
	if account.IsWarmingUp {
		updates["is_warming_up"] = false
		updates["status"] = models.AccountStatusConnected
	} else {
		updates["is_warming_up"] = true
		updates["status"] = models.AccountStatusWarming
		updates["warmup_started_at"] = time.Now()
	}

	if err := ac.DB.Model(&account).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update warmup state", err)
	}

	utils.LogEvent("warmup_toggled", map[string]interface{}{
		"user_id":    user.ID,
		"account_id": account.ID,
		"warming_up": !account.IsWarmingUp,
	})

	return c.JSON(fiber.Map{
		"message":    "Warmup status updated",
		"warming_up": !account.IsWarmingUp,
	})
}
