package httpapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preflighthq/preflight/pkg/domain/review"
	"github.com/xeipuuv/gojsonschema"
)

// Schemas for the JSON-encoded multipart parts. Payloads that fail these are
// rejected before the engine is invoked.
const metadataSchemaJSON = `{
  "type": "object",
  "properties": {
    "appName": {"type": "string"},
    "description": {"type": "string"},
    "keywords": {"type": "string"},
    "primaryCategory": {"type": "string"},
    "ageRating": {"type": "string"}
  },
  "additionalProperties": false
}`

const answersSchemaJSON = `{
  "type": "object",
  "additionalProperties": {"type": "string"}
}`

const screenshotsSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "width": {"type": "integer", "minimum": 0},
      "height": {"type": "integer", "minimum": 0},
      "name": {"type": "string"}
    },
    "required": ["width", "height", "name"],
    "additionalProperties": false
  }
}`

var (
	metadataSchemaLoader    = gojsonschema.NewStringLoader(metadataSchemaJSON)
	answersSchemaLoader     = gojsonschema.NewStringLoader(answersSchemaJSON)
	screenshotsSchemaLoader = gojsonschema.NewStringLoader(screenshotsSchemaJSON)
)

// validateAgainst runs a document through a schema and flattens any
// violations into a single error.
func validateAgainst(schema gojsonschema.JSONLoader, document string) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// parseMetadata decodes and validates the metadata part.
func parseMetadata(raw string) (*review.Metadata, error) {
	if err := validateAgainst(metadataSchemaLoader, raw); err != nil {
		return nil, err
	}
	var meta review.Metadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &meta, nil
}

// parseAnswers decodes and validates the answers part.
func parseAnswers(raw string) (map[string]string, error) {
	if err := validateAgainst(answersSchemaLoader, raw); err != nil {
		return nil, err
	}
	var answers map[string]string
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

// parseScreenshots decodes and validates the screenshot dimension list.
func parseScreenshots(raw string) ([]review.Screenshot, error) {
	if err := validateAgainst(screenshotsSchemaLoader, raw); err != nil {
		return nil, err
	}
	var shots []review.Screenshot
	if err := json.Unmarshal([]byte(raw), &shots); err != nil {
		return nil, fmt.Errorf("decode screenshots: %w", err)
	}
	return shots, nil
}
