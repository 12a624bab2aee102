package httpapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// onboardingPatchSchema constrains PATCH /users/:id/onboarding bodies.
const onboardingPatchSchema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"motherLanguage":         {"type": "string", "minLength": 2, "maxLength": 8},
		"studyLanguage":          {"type": "string", "minLength": 2, "maxLength": 8},
		"dialect":                {"type": "string", "minLength": 1, "maxLength": 64},
		"hasVoice":               {"type": "boolean"},
		"hasJustSelectedTopics":  {"type": "boolean"},
		"dailyStudyMinutes":      {"type": "integer"},
		"hasJustAcceptedTerms":   {"type": "boolean"},
		"hasJustClonedVoice":     {"type": "boolean"},
		"clearDailyStudyMinutes": {"type": "boolean"}
	}
}`

// wordSchema constrains POST /users/:id/words bodies.
const wordSchema = `{
	"type": "object",
	"additionalProperties": false,
	"required": ["word", "language"],
	"properties": {
		"word":      {"type": "string", "minLength": 1, "maxLength": 128},
		"language":  {"type": "string", "minLength": 2, "maxLength": 8},
		"learnedAt": {"type": "string"}
	}
}`

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

func compiledSchemas() (map[string]*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemas, schemaErr = compileSchemas(map[string]string{
			"onboarding-patch": onboardingPatchSchema,
			"word":             wordSchema,
		})
	})
	return schemas, schemaErr
}

func compileSchemas(defs map[string]string) (map[string]*jsonschema.Schema, error) {
	out := make(map[string]*jsonschema.Schema, len(defs))
	c := jsonschema.NewCompiler()
	for name, def := range defs {
		var parsed any
		if err := json.Unmarshal([]byte(def), &parsed); err != nil {
			return nil, fmt.Errorf("parse schema %q: %w", name, err)
		}
		if err := c.AddResource(schemaURL(name), parsed); err != nil {
			return nil, fmt.Errorf("add schema %q: %w", name, err)
		}
	}
	for name := range defs {
		compiled, err := c.Compile(schemaURL(name))
		if err != nil {
			return nil, fmt.Errorf("compile schema %q: %w", name, err)
		}
		out[name] = compiled
	}
	return out, nil
}

func schemaURL(name string) string {
	return fmt.Sprintf("schema://%s.json", name)
}

// decodeValidated checks raw against the named schema, then decodes it into v.
func decodeValidated(name string, raw []byte, v any) error {
	all, err := compiledSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return badRequest("invalid_json", "invalid JSON: %v", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return badRequest("schema_violation", "%v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return badRequest("invalid_json", "decode body: %v", err)
	}
	return nil
}
