package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var configSchemaBytes []byte

var (
	configSchema     *jsonschema.Schema
	configSchemaOnce sync.Once
	configSchemaErr  error
	schemaPrinter    = message.NewPrinter(language.English)
)

// getConfigSchema compiles the embedded JSON schema once and returns it.
func getConfigSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(configSchemaBytes))
		if err != nil {
			configSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			configSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		configSchema, configSchemaErr = c.Compile("config.schema.json")
		if configSchemaErr != nil {
			configSchemaErr = fmt.Errorf("compiling schema: %w", configSchemaErr)
		}
	})
	return configSchema, configSchemaErr
}

// validateConfigBytes checks raw YAML config data against the embedded
// schema before viper gets to interpret it. Violations come back as a
// single userError naming every offending location.
func validateConfigBytes(data []byte) error {
	schema, err := getConfigSchema()
	if err != nil {
		return wrapErrorwithSourceLocf(err, "loading config schema")
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return newUserErrorf("config is not valid YAML: %s", err)
	}
	// An empty config file decodes to nil and counts as valid.
	if raw == nil {
		return nil
	}

	// Convert YAML maps to JSON-compatible types and marshal to JSON,
	// then unmarshal with json.Number support for the schema validator.
	raw = normalizeYAML(raw)
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return wrapErrorwithSourceLocf(err, "converting config to JSON")
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return wrapErrorwithSourceLocf(err, "preparing config for validation")
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return wrapErrorwithSourceLocf(err, "validating config")
	}
	return newUserErrorf("invalid config: %s", strings.Join(configIssues(validationErr), "; "))
}

// configIssues walks the validation error tree and formats its leaves.
func configIssues(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			loc = "config"
		}
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(schemaPrinter)
		}
		return []string{fmt.Sprintf("%s: %s", loc, msg)}
	}
	var issues []string
	for _, cause := range ve.Causes {
		issues = append(issues, configIssues(cause)...)
	}
	return issues
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types so the schema validator sees consistent maps and slices.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
