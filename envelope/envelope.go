// Package envelope parses the backend's inconsistently wrapped JSON bodies
// into a uniform payload. The backend usually wraps responses in
// {success, message, data} but some endpoints return the page object or
// the array bare; all three shapes are tried in priority order. New shapes
// belong here, never in the normalizer.
package envelope

import (
	"encoding/json"
	"fmt"
)

// BackendError is a response the backend itself flagged as failed
// (success == false) even though the HTTP status was 2xx.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return "backend reported failure"
	}
	return fmt.Sprintf("backend reported failure: %s", e.Message)
}

// Payload is the uniform result of parsing a list response. Items hold the
// still-raw records for the normalizer; page metadata is zero and Paged is
// false when the backend sent a flat array.
type Payload struct {
	Items         []map[string]any
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
	Paged         bool
}

// Parse decodes a list response body, unwrapping the standard envelope if
// present, then accepting either a page object or a bare array.
func Parse(body []byte) (Payload, error) {
	data, err := unwrap(body)
	if err != nil {
		return Payload{}, err
	}

	switch v := data.(type) {
	case []any:
		return Payload{Items: rawItems(v)}, nil
	case map[string]any:
		content, ok := v["content"].([]any)
		if !ok {
			return Payload{}, fmt.Errorf("unrecognized list payload shape")
		}
		return Payload{
			Items:         rawItems(content),
			Page:          intField(v, "page", "number"),
			Size:          intField(v, "size"),
			TotalElements: intField(v, "totalElements", "total_elements"),
			TotalPages:    intField(v, "totalPages", "total_pages"),
			Paged:         true,
		}, nil
	}
	return Payload{}, fmt.Errorf("unrecognized list payload shape")
}

// ParseObject decodes a single-entity response body, unwrapping the
// envelope if present.
func ParseObject(body []byte) (map[string]any, error) {
	data, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unrecognized entity payload shape")
	}
	return obj, nil
}

// ParseStrings decodes a response whose payload is a plain string array
// (the locations and types endpoints), unwrapping the envelope if present.
func ParseStrings(body []byte) ([]string, error) {
	data, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	list, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("unrecognized string list payload shape")
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// unwrap removes the {success, message, data} envelope when the body
// carries one; anything else passes through decoded but untouched.
func unwrap(body []byte) (any, error) {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("undecodable response body: %w", err)
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return root, nil
	}
	flag, wrapped := obj["success"].(bool)
	if !wrapped {
		return root, nil
	}
	if !flag {
		message, _ := obj["message"].(string)
		return nil, &BackendError{Message: message}
	}
	return obj["data"], nil
}

// rawItems keeps object elements as maps and leaves anything else nil so
// the normalizer can reject it.
func rawItems(list []any) []map[string]any {
	items := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, _ := item.(map[string]any)
		items = append(items, obj)
	}
	return items
}

func intField(obj map[string]any, keys ...string) int {
	for _, k := range keys {
		if n, ok := obj[k].(float64); ok {
			return int(n)
		}
	}
	return 0
}
