package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// IsEmptyResult reports whether a model answered with nothing usable: blank
// text or a bare JSON null.
func IsEmptyResult(response string) bool {
	trimmed := strings.TrimSpace(response)
	return trimmed == "" || trimmed == "null"
}

// ExtractJSON returns the outermost JSON object in an LLM response, dropping
// markdown fences or prose around it.
func ExtractJSON(response string) (string, error) {
	start := -1
	end := -1

	for i, c := range response {
		if c == '{' {
			start = i
			break
		}
	}
	for i := len(response) - 1; i >= 0; i-- {
		if response[i] == '}' {
			end = i + 1
			break
		}
	}

	if start == -1 {
		return "", fmt.Errorf("no JSON object found in response (missing '{')")
	}
	if end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response (missing '}')")
	}
	return response[start:end], nil
}

// ParseJSON extracts, schema-checks and unmarshals a JSON object into T.
// A nil schema skips validation.
func ParseJSON[T any](response string, schema *Schema) (T, error) {
	var zero T

	jsonStr, err := ExtractJSON(response)
	if err != nil {
		return zero, err
	}

	if schema != nil {
		if err := schema.Validate([]byte(jsonStr)); err != nil {
			return zero, err
		}
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}
