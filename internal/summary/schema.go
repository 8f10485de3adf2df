package summary

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// courseSummarySchema pins the summary contract the static site consumes.
// Summaries are validated against it before they are written so a bad build
// never reaches the site pipeline.
const courseSummarySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["course", "university", "students", "spotlight", "statistics", "metadata"],
  "properties": {
    "course": {
      "type": "object",
      "required": ["code", "name", "semester", "year"],
      "properties": {
        "code": {"type": "string", "minLength": 1},
        "name": {"type": "string", "minLength": 1},
        "semester": {"type": "string"},
        "year": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "university": {
      "type": "object",
      "required": ["name", "website"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "phone": {"type": "string"},
        "address": {"type": "string"},
        "website": {"type": "string"}
      }
    },
    "students": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["username", "name", "profilePath"],
        "properties": {
          "username": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "email": {"type": "string"},
          "semester": {"type": "string"},
          "course": {"type": "string"},
          "profilePath": {"type": "string", "minLength": 1},
          "profilePage": {"type": "string"},
          "avatarPath": {"type": "string"},
          "files": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "url"],
              "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "spotlight": {"type": "array"},
    "statistics": {
      "type": "object",
      "required": ["totalStudents", "totalProjects", "lastUpdated"],
      "properties": {
        "totalStudents": {"type": "integer", "minimum": 0},
        "totalProjects": {"type": "integer", "minimum": 0},
        "lastUpdated": {"type": "string"}
      }
    },
    "metadata": {
      "type": "object",
      "required": ["dataSource", "syncedAt", "syncRunId", "version"],
      "properties": {
        "dataSource": {"type": "string"},
        "syncedAt": {"type": "string"},
        "syncRunId": {"type": "string"},
        "version": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("course-summary.json", strings.NewReader(courseSummarySchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("course-summary.json")
	})
	if schemaErr != nil {
		return nil, fmt.Errorf("summary: compile schema: %w", schemaErr)
	}
	return compiledSchema, nil
}

// validateDocument checks a decoded summary document against the embedded
// schema.
func validateDocument(doc any) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("summary: schema validation: %w", err)
	}
	return nil
}
