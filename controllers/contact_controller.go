package controller

import (
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coldreach/listview"
	"coldreach/models"
	"coldreach/utils"
)

type ContactController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewContactController(db *gorm.DB, logger *log.Logger) *ContactController {
	return &ContactController{
		DB:     db,
		Logger: logger,
	}
}

// contactFields adapts contacts to the list filter/sort engine
func contactFields() listview.Fields[models.Contact] {
	return listview.Fields[models.Contact]{
		Searchable: func(ct models.Contact) []string {
			return []string{ct.FirstName, ct.LastName, ct.Email, ct.Company}
		},
		Status:    func(ct models.Contact) string { return ct.Status },
		Campaign:  func(ct models.Contact) string { return ct.CampaignName },
		Name:      func(ct models.Contact) string { return ct.FirstName + " " + ct.LastName },
		CreatedAt: func(ct models.Contact) time.Time { return ct.CreatedAt },
		UpdatedAt: func(ct models.Contact) time.Time { return ct.UpdatedAt },
	}
}

// CreateContact creates a new contact with validation
func (cc *ContactController) CreateContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Email         string `json:"email" validate:"required,email"`
		FirstName     string `json:"first_name" validate:"omitempty,max=100"`
		LastName      string `json:"last_name" validate:"omitempty,max=100"`
		Company       string `json:"company" validate:"omitempty,max=200"`
		Position      string `json:"position" validate:"omitempty,max=200"`
		Location      string `json:"location" validate:"omitempty,max=200"`
		ContactListID uint   `json:"contact_list_id"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := checkmail.ValidateFormat(input.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
	}

	// Email is the unique key within a user's contacts
	var existing models.Contact
	if err := cc.DB.Where("email = ? AND user_id = ?", strings.ToLower(input.Email), user.ID).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Contact with this email already exists", nil)
	}

	contact := models.Contact{
		UserID:    user.ID,
		Email:     strings.ToLower(input.Email),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Position:  input.Position,
		Location:  input.Location,
		Status:    models.ContactStatusActive,
	}
	if input.ContactListID != 0 {
		var list models.ContactList
		if err := cc.DB.Where("id = ? AND user_id = ?", input.ContactListID, user.ID).First(&list).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact list not found", nil)
		}
		contact.ContactListID = utils.Pointer(input.ContactListID)
	}

	if err := cc.DB.Create(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create contact", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(contact))
}

// GetContacts returns the user's contacts filtered and sorted through
// the list view engine. Query params: search, status, campaign, sort.
func (cc *ContactController) GetContacts(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var contacts []models.Contact
	query := cc.DB.Where("user_id = ?", user.ID)
	if listID := c.Query("list_id"); listID != "" {
		listIDUint, err := strconv.ParseUint(listID, 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid list ID", err)
		}
		query = query.Where("contact_list_id = ?", uint(listIDUint))
	}
	if err := query.Order("id").Find(&contacts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contacts", nil)
	}

	view := listview.View(contacts, listview.Query{
		Text:           c.Query("search"),
		StatusEquals:   c.Query("status"),
		CampaignEquals: c.Query("campaign"),
		SortKey:        c.Query("sort", listview.SortByCreated),
	}, contactFields())

	counts := fiber.Map{
		"total":        len(contacts),
		"active":       0,
		"replied":      0,
		"unsubscribed": 0,
		"bounced":      0,
	}
	for _, ct := range contacts {
		if n, ok := counts[ct.Status].(int); ok {
			counts[ct.Status] = n + 1
		}
	}

	return c.JSON(fiber.Map{
		"contacts": view,
		"counts":   counts,
	})
}

// GetContact returns one contact
func (cc *ContactController) GetContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", nil)
	}

	return c.JSON(utils.SuccessResponse(contact))
}

// UpdateContact updates a contact's profile fields. Status is driven by
// delivery events and is not editable here.
func (cc *ContactController) UpdateContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", nil)
	}

	var input struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Company   *string `json:"company"`
		Position  *string `json:"position"`
		Location  *string `json:"location"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := map[string]interface{}{}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Company != nil {
		updates["company"] = *input.Company
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}

	if len(updates) > 0 {
		if err := cc.DB.Model(&contact).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update contact", err)
		}
	}

	return c.JSON(utils.SuccessResponse(contact))
}

// DeleteContact removes a contact
func (cc *ContactController) DeleteContact(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var contact models.Contact
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact not found", nil)
	}

	if err := cc.DB.Delete(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact", err)
	}

	return c.JSON(fiber.Map{"message": "Contact deleted"})
}

// BulkAction applies one action to a set of selected contacts. The
// selection is cleared after dispatch whether or not the effect
// succeeded, matching the dashboard's behavior.
func (cc *ContactController) BulkAction(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Action string   `json:"action" validate:"required,oneof=delete export add-to-campaign"`
		IDs    []string `json:"ids" validate:"required,min=1"`

		// For add-to-campaign
		CampaignName string `json:"campaign_name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	// Only ids the user can actually see are selectable
	var visible []models.Contact
	if err := cc.DB.Where("user_id = ?", user.ID).Find(&visible).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contacts", nil)
	}
	visibleIDs := make(map[string]struct{}, len(visible))
	for _, ct := range visible {
		visibleIDs[strconv.FormatUint(uint64(ct.ID), 10)] = struct{}{}
	}

	selection := listview.NewSelection()
	for _, id := range input.IDs {
		if _, ok := visibleIDs[id]; ok {
			selection.Toggle(id)
		}
	}
	if selection.Len() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No matching contacts selected", nil)
	}

	var exported [][]string
	err := selection.Dispatch(input.Action, func(action string, ids []string) error {
		numericIDs := make([]uint, 0, len(ids))
		for _, id := range ids {
			numericIDs = append(numericIDs, utils.ParseUint(id))
		}

		switch action {
		case listview.ActionDelete:
			return cc.DB.Where("user_id = ? AND id IN ?", user.ID, numericIDs).
				Delete(&models.Contact{}).Error

		case listview.ActionExport:
			var rows []models.Contact
			if err := cc.DB.Where("user_id = ? AND id IN ?", user.ID, numericIDs).Find(&rows).Error; err != nil {
				return err
			}
			exported = append(exported, []string{"email", "first_name", "last_name", "company", "position", "status"})
			for _, ct := range rows {
				exported = append(exported, []string{ct.Email, ct.FirstName, ct.LastName, ct.Company, ct.Position, ct.Status})
			}
			return nil

		case listview.ActionAddToCampaign:
			if input.CampaignName == "" {
				return fmt.Errorf("campaign_name is required for add-to-campaign")
			}
			return cc.DB.Model(&models.Contact{}).
				Where("user_id = ? AND id IN ?", user.ID, numericIDs).
				Update("campaign_name", input.CampaignName).Error
		}
		return nil
	})
	if err != nil {
		cc.Logger.Printf("Bulk %s failed: %v", input.Action, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Bulk action failed", err)
	}

	if input.Action == listview.ActionExport {
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.WriteAll(exported); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build export", err)
		}
		c.Set("Content-Type", "text/csv")
		c.Set("Content-Disposition", "attachment; filename=contacts.csv")
		return c.SendString(sb.String())
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Bulk %s completed", input.Action),
	})
}

// ImportContacts ingests a CSV upload. Expected columns: email,
// first_name, last_name, company, position, location.
func (cc *ContactController) ImportContacts(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "CSV file is required", err)
	}

	listID := utils.ParseUint(c.FormValue("contact_list_id"))

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Failed to open upload", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid CSV file", err)
	}
	if len(records) < 2 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "CSV file has no data rows", nil)
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["email"]; !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "CSV must have an email column", nil)
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	imported, skipped := 0, 0
	for _, row := range records[1:] {
		email := strings.ToLower(field(row, "email"))
		if checkmail.ValidateFormat(email) != nil {
			skipped++
			continue
		}

		var existing models.Contact
		if err := cc.DB.Where("email = ? AND user_id = ?", email, user.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		contact := models.Contact{
			UserID:    user.ID,
			Email:     email,
			FirstName: field(row, "first_name"),
			LastName:  field(row, "last_name"),
			Company:   field(row, "company"),
			Position:  field(row, "position"),
			Location:  field(row, "location"),
			Status:    models.ContactStatusActive,
		}
		if listID != 0 {
			contact.ContactListID = utils.Pointer(listID)
		}

		if err := cc.DB.Create(&contact).Error; err != nil {
			cc.Logger.Printf("Failed to import contact %s: %v", email, err)
			skipped++
			continue
		}
		imported++
	}

	utils.LogEvent("contacts_imported", map[string]interface{}{
		"user_id":  user.ID,
		"imported": imported,
		"skipped":  skipped,
	})

	return c.JSON(fiber.Map{
		"message":  "Import completed",
		"imported": imported,
		"skipped":  skipped,
	})
}
