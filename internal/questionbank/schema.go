package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

// bankSchema describes the shape of a question bank document.
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["text", "answer", "category", "options"],
        "additionalProperties": false,
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "answer": {"type": "string", "minLength": 1},
          "category": {"enum": ["Geography", "History"]},
          "options": {
            "type": "array",
            "minItems": 2,
            "uniqueItems": true,
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not raw bytes.
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// validateDocument checks raw JSON against the bank schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
