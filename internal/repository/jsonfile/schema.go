package jsonfile

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// documentSchemaJSON describes the persisted document. Every load is checked
// against it so a hand-edited or truncated file surfaces as a storage error
// instead of silently dropping records.
const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["users", "todos"],
  "additionalProperties": false,
  "properties": {
    "users": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "email", "login"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "pattern": "^[0-9]+$"},
          "name": {"type": "string"},
          "email": {"type": "string"},
          "login": {"type": "string"}
        }
      }
    },
    "todos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "completed", "user_id"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "pattern": "^[0-9]+$"},
          "title": {"type": "string"},
          "completed": {"type": "boolean"},
          "user_id": {"type": "string", "pattern": "^[0-9]+$"}
        }
      }
    }
  }
}`

var documentSchema = jsonschema.MustCompileString("document.schema.json", documentSchemaJSON)
