package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	openai "github.com/sashabaranov/go-openai"

	"coldreach/utils"
)

// AIController generates subject lines and email bodies. Without an API
// key it answers with deterministic demo text so the wizard stays
// usable in development.
type AIController struct {
	Client *openai.Client // nil when no credential is configured
	Logger *log.Logger
}

func NewAIController(apiKey string, logger *log.Logger) *AIController {
	ac := &AIController{Logger: logger}
	if apiKey != "" {
		ac.Client = openai.NewClient(apiKey)
	}
	return ac
}

type GenerateEmailRequest struct {
	Type             string `json:"type" validate:"required,oneof=subject body"`
	Tone             string `json:"tone" validate:"required"`
	Industry         string `json:"industry"`
	Persona          string `json:"persona"`
	Objective        string `json:"objective" validate:"required"`
	CurrentSubject   string `json:"currentSubject"`
	CurrentContent   string `json:"currentContent"`
	SequencePosition string `json:"sequencePosition"`
}

// GenerateEmail produces AI-assisted campaign copy
func (ai *AIController) GenerateEmail(c *fiber.Ctx) error {
	var req GenerateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Type, tone, and objective are required",
		})
	}

	promptCtx := utils.PromptContext{
		Type:             req.Type,
		Tone:             req.Tone,
		Industry:         req.Industry,
		Persona:          req.Persona,
		Objective:        req.Objective,
		CurrentSubject:   req.CurrentSubject,
		CurrentContent:   req.CurrentContent,
		SequencePosition: req.SequencePosition,
	}

	if ai.Client == nil {
		return c.JSON(fiber.Map{
			"generated": utils.DemoResponse(promptCtx),
			"model":     "demo-mode",
		})
	}

	prompt := utils.BuildPrompt(promptCtx)

	completion, err := ai.Client.CreateChatCompletion(c.Context(), openai.ChatCompletionRequest{
		Model: openai.GPT4,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: utils.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		utils.LogError("ai_generation_failed", err, map[string]interface{}{
			"type": req.Type,
			"tone": req.Tone,
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate content",
		})
	}

	var generated string
	if len(completion.Choices) > 0 {
		generated = completion.Choices[0].Message.Content
	}

	return c.JSON(fiber.Map{
		"generated": generated,
		"model":     completion.Model,
		"usage":     completion.Usage,
	})
}
