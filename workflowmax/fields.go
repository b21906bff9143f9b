package workflowmax

import (
	"strconv"
	"strings"
)

func parseIntField(entity, field, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &FieldError{Entity: entity, Field: field, Value: value, Err: err}
	}
	return parsed, nil
}

func parseFloatField(entity, field, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &FieldError{Entity: entity, Field: field, Value: value, Err: err}
	}
	return parsed, nil
}

func parseBoolField(entity, field, value string) (bool, error) {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, &FieldError{Entity: entity, Field: field, Value: value, Err: err}
	}
	return parsed, nil
}
