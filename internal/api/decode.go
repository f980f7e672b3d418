package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ShapeError reports a response body whose JSON shape does not match the
// documented API surface. Shape mismatch is a hard error, never a silent
// fallback to an empty result.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: want %s, got %s", e.Want, e.Got)
}

// decodeOne decodes a single-record response body.
func decodeOne[T any](data []byte) (*T, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, &ShapeError{Want: "object", Got: describeShape(raw)}
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &item, nil
}

// decodeList decodes a collection response body. List endpoints return
// either a bare JSON array or, on older deployments, an object wrapping
// the array under "items" or "data". All other shapes are rejected. This
// is the only place in the client that sniffs response shapes.
func decodeList[T any](data []byte) ([]T, error) {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 {
		return nil, &ShapeError{Want: "array", Got: "empty body"}
	}

	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	case '{':
		var wrapper struct {
			Items json.RawMessage `json:"items"`
			Data  json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		inner := wrapper.Items
		if inner == nil {
			inner = wrapper.Data
		}
		if inner == nil {
			return nil, &ShapeError{Want: "array or items/data wrapper", Got: "object without items or data"}
		}
		var items []T
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	default:
		return nil, &ShapeError{Want: "array or items/data wrapper", Got: describeShape(raw)}
	}
}

func describeShape(raw []byte) string {
	if len(raw) == 0 {
		return "empty body"
	}
	switch raw[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number or malformed JSON"
	}
}
