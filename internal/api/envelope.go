package api

import (
	"bytes"
	"encoding/json"
)

// unwrapList normalizes the three collection envelopes the remote API is
// known to produce. Precedence: an object exposing the items under "data",
// then under "results", then a bare array. A body matching none of the
// three degrades to an empty list; the client never guesses beyond the
// documented shapes.
func unwrapList[T any](body []byte) []T {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}
	}

	if body[0] == '{' {
		var env struct {
			Data    json.RawMessage `json:"data"`
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(body, &env); err != nil {
			return []T{}
		}
		if items, ok := decodeArray[T](env.Data); ok {
			return items
		}
		if items, ok := decodeArray[T](env.Results); ok {
			return items
		}
		return []T{}
	}

	if items, ok := decodeArray[T](body); ok {
		return items
	}
	return []T{}
}

func decodeArray[T any](raw json.RawMessage) ([]T, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}
