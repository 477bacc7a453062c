package rest

import (
	"encoding/json"
	"time"
)

// Normalize rewrites MongoDB extended-JSON wrappers into the plain shapes
// the domain models expect: {"$oid": x} becomes x, {"$date": x} becomes an
// RFC 3339 timestamp, and a top-level "_id" field is renamed to "id" when
// no "id" is present. It is a pure transform applied uniformly to list and
// single-item payloads.
func Normalize(raw json.RawMessage) (json.RawMessage, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(value))
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if oid, ok := unwrapOID(v); ok {
			return oid
		}
		if date, ok := unwrapDate(v); ok {
			return date
		}
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeValue(item)
		}
		if id, ok := out["_id"]; ok {
			if _, exists := out["id"]; !exists {
				out["id"] = id
			}
			delete(out, "_id")
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return value
	}
}

func unwrapOID(v map[string]any) (string, bool) {
	if len(v) != 1 {
		return "", false
	}
	oid, ok := v["$oid"].(string)
	return oid, ok
}

func unwrapDate(v map[string]any) (string, bool) {
	if len(v) != 1 {
		return "", false
	}
	raw, ok := v["$date"]
	if !ok {
		return "", false
	}
	switch date := raw.(type) {
	case string:
		return date, true
	case float64:
		return time.UnixMilli(int64(date)).UTC().Format(time.RFC3339), true
	default:
		return "", false
	}
}
