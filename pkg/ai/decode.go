package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// decoder turns raw model output into a structured value. Schema-constrained
// providers use the strict decoder and bypass tolerant extraction entirely;
// free-text providers go through the extracting decoder.
type decoder interface {
	Decode(raw string, v any) error
}

// strictDecoder expects the whole response to be a well-formed JSON object
type strictDecoder struct{}

func (strictDecoder) Decode(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("parse json response: %w", err)
	}
	return nil
}

// extractingDecoder pulls the first brace-delimited object out of free-form
// text before parsing. This is the single tolerant-parsing policy shared by
// all free-text operations.
type extractingDecoder struct{}

func (extractingDecoder) Decode(raw string, v any) error {
	obj := ExtractJSONObject(raw)
	if obj == nil {
		return fmt.Errorf("no json object found in response")
	}
	if err := json.Unmarshal(obj, v); err != nil {
		return fmt.Errorf("parse extracted json: %w", err)
	}
	return nil
}

// matches the first {...} without nested braces
var jsonObjectRe = regexp.MustCompile(`\{[^{}]*\}`)

// ExtractJSONObject returns the first well-formed brace-delimited JSON object
// found in s, or nil when there is none. It never fails on malformed input.
func ExtractJSONObject(s string) []byte {
	match := jsonObjectRe.FindString(s)
	if match == "" {
		return nil
	}
	if !json.Valid([]byte(match)) {
		return nil
	}
	return []byte(match)
}
