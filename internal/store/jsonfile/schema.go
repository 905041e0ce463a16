package jsonfile

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

const backlogSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "items": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["description"],
        "properties": {
          "description": {"type": "string"},
          "created_at": {"type": "string"},
          "done": {"type": "boolean"}
        }
      }
    }
  }
}`

const indexSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "repos": {
      "type": ["array", "null"],
      "items": {"type": "string"}
    }
  }
}`

var (
	backlogSchema = jsonschema.MustCompileString("backlog.schema.json", backlogSchemaJSON)
	indexSchema   = jsonschema.MustCompileString("index.schema.json", indexSchemaJSON)
)
