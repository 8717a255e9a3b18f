package model

import "encoding/json"

// ApiResponse is the generic envelope every integration endpoint answers
// with. The backend is inconsistent about which error shape it populates, so
// callers should read errors through ErrorText rather than a single field.
type ApiResponse struct {
	Success      bool            `json:"success"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorCode    string          `json:"errorCode,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	Error        *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

// DecodeResult unmarshals the endpoint-specific result payload into v.
func (r *ApiResponse) DecodeResult(v any) error {
	if len(r.Result) == 0 {
		return nil
	}
	return json.Unmarshal(r.Result, v)
}

// ErrorText probes the possible error-carrying fields in order and returns
// the first populated one, or "" when the envelope carries no error.
func (r *ApiResponse) ErrorText() string {
	if r.Error != nil {
		if r.Error.ErrorDescription != "" {
			return r.Error.ErrorDescription
		}
		if r.Error.ErrorCode != "" {
			return r.Error.ErrorCode
		}
	}
	if r.ErrorMessage != "" {
		return r.ErrorMessage
	}
	return r.ErrorCode
}
