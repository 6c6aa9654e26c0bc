package client

import (
	"encoding/json"
	"fmt"
)

// APIError is returned for all responses with a status code outside of 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError takes the message from the "error" field of the body, then from
// the "message" field. If neither is set, a generic message is used.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	message := fmt.Sprintf("HTTP %d", status)
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			message = payload.Error
		case payload.Message != "":
			message = payload.Message
		}
	}

	return &APIError{Status: status, Message: message}
}
