package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Response is the raw outcome of a call as handed over by the transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// envelope is the error body the server sends with every failed call.
type envelope struct {
	Error        bool   `json:"error"`
	Code         int    `json:"code"`
	ErrorNum     int    `json:"errorNum"`
	ErrorMessage string `json:"errorMessage"`
}

// Interpret classifies res and extracts the raw result described by rt.
//
// A non-2xx status yields an *APIError decoded from the error envelope. Success bodies are
// not probed for an envelope: a document may carry an attribute named error. A success body
// that lacks the expected result field is a protocol violation.
func Interpret(res *Response, rt ReturnType) (json.RawMessage, error) {
	if !res.IsSuccess() {
		return nil, errorFromResponse(res)
	}

	body := bytes.TrimSpace(res.Body)
	if len(body) == 0 {
		if rt.ResultField != "" {
			return nil, fmt.Errorf("%w: empty body, expected field %q", ErrProtocolViolation, rt.ResultField)
		}
		return nil, nil
	}

	if rt.ResultField == "" {
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: response body is not valid JSON", ErrProtocolViolation)
		}
		return body, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: response body is not a JSON object: %v", ErrProtocolViolation, err)
	}
	result, ok := fields[rt.ResultField]
	if !ok {
		return nil, fmt.Errorf("%w: missing result field %q", ErrProtocolViolation, rt.ResultField)
	}
	return result, nil
}

func errorFromResponse(res *Response) *APIError {
	var env envelope
	if err := json.Unmarshal(res.Body, &env); err == nil && (env.Error || env.ErrorNum != 0) {
		code := ErrorCode(env.ErrorNum)
		if env.ErrorNum == 0 {
			code = ErrorCode(res.StatusCode)
		}
		message := env.ErrorMessage
		if message == "" {
			message = statusMessage(res.StatusCode)
		}
		return &APIError{StatusCode: res.StatusCode, Code: code, Message: message}
	}

	// HEAD responses, 304s and proxies in front of the server carry no envelope.
	return &APIError{
		StatusCode: res.StatusCode,
		Code:       ErrorCode(res.StatusCode),
		Message:    statusMessage(res.StatusCode),
	}
}

func statusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return fmt.Sprintf("status %d", status)
}

// ProbeElementError reports whether a batch response element is an error object and decodes it.
//
// Batch elements carry no explicit discriminant: an element is an error if and only if it has
// an "error" field set to true. Anything else must be decoded as the success shape.
func ProbeElementError(elem []byte) (*ElementError, bool) {
	var probe struct {
		Error        *bool  `json:"error"`
		ErrorNum     int    `json:"errorNum"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(elem, &probe); err != nil {
		return nil, false
	}
	if probe.Error == nil || !*probe.Error {
		return nil, false
	}
	return &ElementError{Code: ErrorCode(probe.ErrorNum), Message: probe.ErrorMessage}, true
}
