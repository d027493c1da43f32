package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// runConfigSchema is the JSON Schema every run configuration must satisfy.
// Structural constraints live here; cross-field rules live in Validate.
const runConfigSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "measure run configuration",
  "type": "object",
  "required": ["workload"],
  "additionalProperties": false,
  "properties": {
    "name": { "type": "string" },
    "workload": {
      "type": "object",
      "required": ["workers", "iterations"],
      "additionalProperties": false,
      "properties": {
        "workers": { "type": "integer", "minimum": 1 },
        "iterations": { "type": "integer", "minimum": 1 },
        "distribution": {
          "type": "string",
          "enum": ["uniform", "normal", "exponential"]
        },
        "mean": { "type": "number" },
        "stddev": { "type": "number", "minimum": 0 },
        "min": { "type": "integer" },
        "max": { "type": "integer" },
        "seed": { "type": "integer" }
      }
    },
    "reservoir": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "type": { "type": "string", "enum": ["hdr", "hdr-highres"] }
      }
    },
    "report": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "percentiles": {
          "type": "array",
          "items": { "type": "number", "exclusiveMinimum": 0, "maximum": 100 }
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("run-config.json", strings.NewReader(runConfigSchema)); err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile("run-config.json")
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	return schema
}

// ValidateDocument validates a JSON document against the run-config schema.
func ValidateDocument(jsonData []byte) error {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
