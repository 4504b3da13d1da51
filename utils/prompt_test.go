package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptSubject(t *testing.T) {
	prompt := BuildPrompt(PromptContext{
		Type:      GenerateSubject,
		Tone:      "formal",
		Industry:  "Fintech",
		Persona:   "CFO",
		Objective: "Book a demo",
	})

	assert.Contains(t, prompt, "subject line")
	assert.Contains(t, prompt, "Industry: Fintech")
	assert.Contains(t, prompt, "Target persona: CFO")
	assert.Contains(t, prompt, "Use professional language")
	assert.Contains(t, prompt, "Generate 3 different options")
	assert.Contains(t, prompt, "Current subject: None")
}

func TestBuildPromptBodyDefaults(t *testing.T) {
	prompt := BuildPrompt(PromptContext{
		Type:      GenerateBody,
		Tone:      "direct",
		Objective: "Start a conversation",
	})

	assert.Contains(t, prompt, "Industry: General business")
	assert.Contains(t, prompt, "Target persona: Business professional")
	assert.Contains(t, prompt, "Email position: Initial email")
	assert.Contains(t, prompt, "Use persuasive, action-oriented language")
	assert.Contains(t, prompt, "Make a strong first impression")
	assert.Contains(t, prompt, "{{first_name}}")
}

func TestBuildPromptFollowUpBody(t *testing.T) {
	prompt := BuildPrompt(PromptContext{
		Type:             GenerateBody,
		Tone:             "casual",
		Objective:        "Get a reply",
		SequencePosition: "follow-up",
	})

	assert.Contains(t, prompt, "Reference previous email subtly")
	assert.Contains(t, prompt, "Use friendly, conversational tone")
}

func TestDemoResponseSubjectIsThreeOptions(t *testing.T) {
	out := DemoResponse(PromptContext{
		Type:      GenerateSubject,
		Industry:  "SaaS",
		Persona:   "Founder",
		Objective: "Book a demo",
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Quick question about SaaS growth", lines[0])
	assert.Equal(t, "Founder insight for {{company}}", lines[1])
	assert.Equal(t, "Helping {{company}} with book a demo", lines[2])
}

func TestDemoResponseBodyVariesByTone(t *testing.T) {
	formal := DemoResponse(PromptContext{Type: GenerateBody, Tone: "formal", Objective: "Grow"})
	casual := DemoResponse(PromptContext{Type: GenerateBody, Tone: "casual", Objective: "Grow"})
	direct := DemoResponse(PromptContext{Type: GenerateBody, Tone: "direct", Objective: "Grow"})

	assert.Contains(t, formal, "optimize their processes")
	assert.Contains(t, casual, "get better results")
	assert.Contains(t, direct, "increase their ROI by 30%")

	for _, body := range []string{formal, casual, direct} {
		assert.Contains(t, body, "Hi {{first_name}},")
		assert.Contains(t, body, "15-minute call")
	}
}
