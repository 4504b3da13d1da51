package controller

import (
	"io"
	"log"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAITestApp() *fiber.App {
	// Empty key keeps the controller in demo mode
	ai := NewAIController("", log.New(io.Discard, "", 0))

	app := fiber.New()
	app.Post("/ai/generate-email", ai.GenerateEmail)
	return app
}

func TestGenerateEmailDemoModeSubject(t *testing.T) {
	app := newAITestApp()

	resp := postJSON(t, app, "/ai/generate-email", fiber.Map{
		"type":      "subject",
		"tone":      "formal",
		"industry":  "SaaS",
		"objective": "Book a demo",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "demo-mode", body["model"])
	assert.Contains(t, body["generated"], "SaaS growth")
	assert.Contains(t, body["generated"], "book a demo")
}

func TestGenerateEmailDemoModeBody(t *testing.T) {
	app := newAITestApp()

	resp := postJSON(t, app, "/ai/generate-email", fiber.Map{
		"type":      "body",
		"tone":      "casual",
		"objective": "Start a conversation",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "demo-mode", body["model"])
	assert.Contains(t, body["generated"], "{{first_name}}")
	assert.Contains(t, body["generated"], "{{company}}")
	assert.Contains(t, body["generated"], "get better results")
}

func TestGenerateEmailMissingRequiredFields(t *testing.T) {
	app := newAITestApp()

	tests := []struct {
		name    string
		payload fiber.Map
	}{
		{"missing type", fiber.Map{"tone": "formal", "objective": "Book a demo"}},
		{"missing tone", fiber.Map{"type": "subject", "objective": "Book a demo"}},
		{"missing objective", fiber.Map{"type": "subject", "tone": "formal"}},
		{"bad type", fiber.Map{"type": "poem", "tone": "formal", "objective": "Book a demo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/ai/generate-email", tt.payload)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			body := decodeBody(t, resp)
			assert.Equal(t, "Type, tone, and objective are required", body["error"])
		})
	}
}
