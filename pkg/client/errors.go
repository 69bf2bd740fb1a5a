package client

import "fmt"

// APIError is a non-2xx response from the server, carrying the message from
// the error envelope (or the HTTP status text when no envelope parses).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// ContractError means the server answered 2xx but the body did not match the
// expected note shape. It is a different failure class than APIError so
// callers can tell transport failures from contract violations.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string {
	return "invalid data received from server: " + e.Reason
}
