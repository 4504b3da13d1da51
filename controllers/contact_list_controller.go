package controller

import (
	"github.com/gofiber/fiber/v2"

	"coldreach/models"
	"coldreach/utils"
)

// CreateContactList creates a named list
func (cc *ContactController) CreateContactList(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var input struct {
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description" validate:"omitempty,max=500"`
		Source      string `json:"source" validate:"omitempty,oneof=manual csv api"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	list := models.ContactList{
		UserID:      user.ID,
		Name:        input.Name,
		Description: input.Description,
		Source:      input.Source,
	}
	if list.Source == "" {
		list.Source = "manual"
	}

	if err := cc.DB.Create(&list).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create contact list", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(list))
}

// GetContactLists returns the user's lists with contact counts
func (cc *ContactController) GetContactLists(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var lists []models.ContactList
	if err := cc.DB.Where("user_id = ?", user.ID).Find(&lists).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch contact lists", nil)
	}

	for i := range lists {
		var count int64
		cc.DB.Model(&models.Contact{}).Where("contact_list_id = ?", lists[i].ID).Count(&count)
		lists[i].ContactCount = int(count)
	}

	return c.JSON(utils.SuccessResponse(lists))
}

// DeleteContactList removes a list, detaching its contacts
func (cc *ContactController) DeleteContactList(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var list models.ContactList
	if err := cc.DB.Where("id = ? AND user_id = ?", c.Params("id"), user.ID).First(&list).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Contact list not found", nil)
	}

	if err := cc.DB.Model(&models.Contact{}).
		Where("contact_list_id = ?", list.ID).
		Update("contact_list_id", nil).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to detach contacts", err)
	}

	if err := cc.DB.Delete(&list).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete contact list", err)
	}

	return c.JSON(fiber.Map{"message": "Contact list deleted"})
}
