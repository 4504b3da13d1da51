package utils

import (
	"sync"

	"github.com/osteele/liquid"
)

// TemplateService renders sequence-step personalization placeholders
// ({{first_name}}, {{company}}, ...) with Liquid, caching parsed
// templates by source.
type TemplateService struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

func NewTemplateService() *TemplateService {
	return &TemplateService{engine: liquid.NewEngine()}
}

// Render substitutes the contact's fields into a step's subject or
// content. Missing variables render as empty strings.
func (ts *TemplateService) Render(source string, vars map[string]interface{}) (string, error) {
	tpl, err := ts.parse(source)
	if err != nil {
		return "", err
	}
	out, err := tpl.RenderString(vars)
	if err != nil {
		return "", err
	}
	return out, nil
}

func (ts *TemplateService) parse(source string) (*liquid.Template, error) {
	if cached, ok := ts.cache.Load(source); ok {
		return cached.(*liquid.Template), nil
	}
	tpl, err := ts.engine.ParseString(source)
	if err != nil {
		return nil, err
	}
	ts.cache.Store(source, tpl)
	return tpl, nil
}

// ContactVars builds the variable map for one contact
func ContactVars(firstName, lastName, company string) map[string]interface{} {
	return map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"company":    company,
	}
}
