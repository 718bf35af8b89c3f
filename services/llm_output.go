package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/l3montree-dev/fixflow/shared"
)

var errNoJSONObject = errors.New("output does not contain a json object")

// extractJSON strips a markdown code fence and any prose around the outermost json object.
func extractJSON(output string) (string, error) {
	s := strings.TrimSpace(output)
	if start := strings.Index(s, "```"); start != -1 {
		rest := s[start+3:]
		rest = strings.TrimPrefix(rest, "json")
		rest = strings.TrimPrefix(rest, "JSON")
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		s = strings.TrimSpace(rest)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end < start {
		return "", errNoJSONObject
	}
	return s[start : end+1], nil
}

// decodeLLMOutput parses and validates the json object of a backend response into v.
func decodeLLMOutput(output string, v any) error {
	raw, err := extractJSON(output)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("could not parse backend output: %w", err)
	}
	if err := shared.V.Struct(v); err != nil {
		return fmt.Errorf("backend output has an invalid shape: %w", err)
	}
	return nil
}
