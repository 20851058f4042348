package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"daterelative/internal/utils"
)

// DateFields are the keys consulted for the date value, highest priority first.
var DateFields = []string{"due_date", "start_date", "created"}

// Payload is one task document received from the host on stdin.
// Only DateFields are consulted unless the caller asks for Hints.
type Payload struct {
	fields map[string]json.RawMessage
}

// Decode reads r to EOF and parses a single JSON object.
func Decode(r io.Reader) (*Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, utils.WrapWithSuggestion(
			fmt.Errorf("failed to read input: %w", err),
			"Pipe a task JSON object to the plugin on stdin",
		)
	}

	return Parse(data)
}

// Parse parses a single JSON object.
func Parse(data []byte) (*Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, utils.ErrInvalidPayload(err)
	}
	// "null" unmarshals into a nil map without error
	if fields == nil {
		return nil, utils.ErrInvalidPayload(fmt.Errorf("expected a JSON object, got null"))
	}

	return &Payload{fields: fields}, nil
}

// Hints returns the presentation hints the host sends with every task:
// the column budget for the field (0 = no limit) and whether color is wanted.
// Values of the wrong type are ignored with a warning.
func (p *Payload) Hints() (width int, color bool) {
	if raw, ok := p.fields["width"]; ok {
		if err := json.Unmarshal(raw, &width); err != nil || width < 0 {
			utils.Warnf("Ignoring invalid width hint %s", raw)
			width = 0
		}
	}
	if raw, ok := p.fields["color"]; ok {
		if err := json.Unmarshal(raw, &color); err != nil {
			utils.Warnf("Ignoring invalid color hint %s", raw)
			color = false
		}
	}
	return width, color
}

// DateValue returns the first non-empty value among DateFields, and the key it came from.
// Strings are returned as-is. Other non-empty JSON values are returned as their
// JSON text so the formatter echoes them back. It returns "" when nothing is set.
func (p *Payload) DateValue() (value string, field string) {
	for _, name := range DateFields {
		raw, ok := p.fields[name]
		if !ok {
			continue
		}
		if v := rawValue(raw); v != "" {
			return v, name
		}
	}
	return "", ""
}

// rawValue converts a JSON value to the string handed to the formatter.
// null, false, 0, "", [] and {} count as empty.
func rawValue(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return ""
	}

	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	case []interface{}:
		if len(val) == 0 {
			return ""
		}
	case map[string]interface{}:
		if len(val) == 0 {
			return ""
		}
	}

	return string(trimmed)
}
