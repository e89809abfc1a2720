package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// JSON name without options such as omitempty
		jsonName := strings.Split(jsonTag, ",")[0]

		// Example value depends on the field type and name
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	// Optional settings are pointers; examples are plain values
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// Only debug is shown enabled
			return fieldName == "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			return 10
		}
	}

	// Strings get examples that fit the field
	if t.Kind() == reflect.String {
		switch fieldName {
		case "db_path":
			return "~/.calix/calix.db"
		case "default_template":
			// Any ID from 'calix catalog templates'
			return "full-body"
		default:
			return "example"
		}
	}

	return nil
}
