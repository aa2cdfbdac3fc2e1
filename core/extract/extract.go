package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Extraction is the detailed outcome of extracting one payload.
type Extraction struct {
	// Role is the declared role of the payload.
	Role Role
	// Shape is the detected layout.
	Shape Shape
	// Usernames is the canonical list, in payload order, duplicates retained.
	Usernames []string
	// Skipped counts records that yielded no identifier.
	Skipped int
}

// Parse decodes a raw export blob.
func Parse(data []byte) (any, error) {
	var payload any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&payload); err != nil {
		return nil, &ExtractionError{Reason: fmt.Sprintf("invalid JSON: %v", err), Err: ErrMalformedPayload}
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, &ExtractionError{Reason: "invalid JSON: trailing data after top-level value", Err: ErrMalformedPayload}
	}
	return payload, nil
}

// Extract returns the canonical list of identifiers held by payload.
func Extract(payload any, role Role) ([]string, error) {
	x, err := Inspect(payload, role)
	if err != nil {
		return nil, err
	}
	return x.Usernames, nil
}

// ExtractBytes parses data and extracts it in one step.
func ExtractBytes(data []byte, role Role) (*Extraction, error) {
	payload, err := Parse(data)
	if err != nil {
		var xe *ExtractionError
		if errors.As(err, &xe) {
			xe.Role = role
		}
		return nil, err
	}
	return Inspect(payload, role)
}

// Inspect extracts payload and reports the detected shape and skipped records.
func Inspect(payload any, role Role) (*Extraction, error) {
	if !role.Valid() {
		return nil, &ExtractionError{Role: role, Reason: fmt.Sprintf("unknown role %q", string(role)), Err: ErrUnknownRole}
	}

	shape := DetectShape(payload)
	if shape == ShapeUnrecognized {
		return nil, &ExtractionError{
			Role:   role,
			Reason: fmt.Sprintf("expected an array or an object with %q or %q", KeyFollowers, KeyFollowing),
			Err:    ErrUnrecognizedShape,
		}
	}

	rule := ruleFor(role)
	list := records(payload, shape, role)

	x := &Extraction{
		Role:      role,
		Shape:     shape,
		Usernames: make([]string, 0, len(list)),
	}
	for _, rec := range list {
		obj, ok := rec.(map[string]any)
		if !ok {
			x.Skipped++
			continue
		}
		name, ok := rule(obj)
		if !ok {
			x.Skipped++
			continue
		}
		x.Usernames = append(x.Usernames, name)
	}

	return x, nil
}

// fieldRule reads the identifier from a single record.
type fieldRule func(record map[string]any) (string, bool)

func ruleFor(role Role) fieldRule {
	if role == RoleFollowing {
		return valueOrTitle
	}
	return firstValue
}

// firstValue reads string_list_data[0].value.
func firstValue(record map[string]any) (string, bool) {
	entries, ok := record["string_list_data"].([]any)
	if !ok || len(entries) == 0 {
		return "", false
	}
	entry, ok := entries[0].(map[string]any)
	if !ok {
		return "", false
	}
	return nonEmptyString(entry["value"])
}

// valueOrTitle prefers string_list_data[0].value and falls back to title.
func valueOrTitle(record map[string]any) (string, bool) {
	if name, ok := firstValue(record); ok {
		return name, true
	}
	return nonEmptyString(record["title"])
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
