package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// genericMessage is shown when the backend sends no usable error body.
const genericMessage = "the backend rejected the request"

// APIError is a non-2xx backend response. Message is passed through to the
// user verbatim when the backend provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (HTTP %d): %s", e.StatusCode, e.Message)
}

// NegativeBalance reports whether the message matches the backend's
// negative-balance policy rejection, so callers can flag it as an
// accounting-policy violation rather than a generic failure.
func (e *APIError) NegativeBalance() bool {
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "saldo negativo") || strings.Contains(msg, "no permite saldo")
}

// decodeError builds an *APIError from a non-2xx response. Error bodies may
// carry a "message" or an "error" field; anything else falls back to a
// generic message.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: genericMessage}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
