package jsonfile

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema describes the persisted document: a sequence of user
// records with nested projects and tasks. Only structural requirements
// are asserted; optional scalar fields are defaulted after decoding,
// and unrecognized status strings are carried through untouched.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "email"],
    "properties": {
      "id": {"type": "integer"},
      "name": {"type": "string"},
      "email": {"type": "string"},
      "projects": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "title"],
          "properties": {
            "id": {"type": "integer"},
            "title": {"type": "string"},
            "description": {"type": "string"},
            "due_date": {"type": "string"},
            "tasks": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["id", "title"],
                "properties": {
                  "id": {"type": "integer"},
                  "title": {"type": "string"},
                  "assigned_to": {"type": "string"},
                  "status": {"type": "string"}
                }
              }
            }
          }
        }
      }
    }
  }
}`

// compileDocumentSchema compiles the embedded document schema.
func compileDocumentSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("users.schema.json", strings.NewReader(documentSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("users.schema.json")
}
