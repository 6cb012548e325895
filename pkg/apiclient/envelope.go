package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyData is returned by Decode when the result carries no data.
var ErrEmptyData = errors.New("apiclient: response has no data")

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
	Error   json.RawMessage `json:"error"`
}

// Normalize maps a raw backend response onto Result. Envelope bodies are
// copied as-is; other JSON bodies become Data with success derived from the
// status code; failures without a message get a generic one.
func Normalize(status int, body []byte) *Result {
	result := &Result{StatusCode: status, Success: status < 400}
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil {
			switch {
			case env.Success != nil:
				result.Success = *env.Success && status < 400
				result.Data = nonNull(env.Data)
				result.Message = env.Message
			default:
				result.Data = json.RawMessage(trimmed)
				result.Message = env.Message
			}
			if result.Message == "" && !result.Success {
				result.Message = firstMessage(env.Detail, env.Error)
			}
		}
	} else if len(trimmed) > 0 && json.Valid(trimmed) {
		result.Data = json.RawMessage(trimmed)
	} else if len(trimmed) > 0 && !result.Success {
		result.Message = string(trimmed)
	}

	if !result.Success && result.Message == "" {
		result.Message = fmt.Sprintf("Request failed with status %d", status)
	}
	return result
}

// firstMessage extracts a human readable message from FastAPI style
// "detail" or generic "error" fields, which may be strings, objects with a
// message, or validation error lists.
func firstMessage(fields ...json.RawMessage) string {
	for _, raw := range fields {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var obj struct {
			Message string `json:"message"`
			Msg     string `json:"msg"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if obj.Message != "" {
				return obj.Message
			}
			if obj.Msg != "" {
				return obj.Msg
			}
		}
		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].Msg != "" {
			return list[0].Msg
		}
	}
	return ""
}

func nonNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}

// Decode unmarshals the result data into T.
func Decode[T any](result *Result) (T, error) {
	var out T
	if result == nil || len(result.Data) == 0 {
		return out, ErrEmptyData
	}
	if err := json.Unmarshal(result.Data, &out); err != nil {
		return out, fmt.Errorf("decode response data: %w", err)
	}
	return out, nil
}
