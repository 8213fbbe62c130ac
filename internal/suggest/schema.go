package suggest

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema constrains the provider's JSON before it is trusted.
// Optional sections may be omitted; the summary is the one hard requirement.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["summary"],
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "critical_improvements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["section", "issue", "suggestion"],
        "properties": {
          "section": {"type": "string"},
          "issue": {"type": "string"},
          "suggestion": {"type": "string"},
          "priority": {"type": "string"}
        }
      }
    },
    "keyword_suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["keyword"],
        "properties": {
          "keyword": {"type": "string"},
          "where_to_add": {"type": "string"},
          "how_to_add": {"type": "string"}
        }
      }
    },
    "rewrite_suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "section": {"type": "string"},
          "current_issue": {"type": "string"},
          "suggested_approach": {"type": "string"}
        }
      }
    },
    "quick_wins": {"type": "array", "items": {"type": "string"}}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(responseSchema)

// validateResponse checks the provider's JSON against responseSchema.
func validateResponse(response string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(response))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("response failed schema validation:")
	for _, desc := range result.Errors() {
		sb.WriteString(fmt.Sprintf(" %s: %s;", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
