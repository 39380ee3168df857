package api

import "fmt"

// DefaultCreateFailure is shown when the server rejects a registration
// without supplying its own message.
const DefaultCreateFailure = "Registration failed."

// TransportError reports that a request never produced a usable response:
// the network was unreachable, the connection broke, or the body could not
// be decoded.
type TransportError struct {
	Op  string // "list", "create", "search", "delete"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s candidates: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError reports a non-2xx response carrying a server message.
type ApplicationError struct {
	Op      string
	Status  int
	Message string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%s candidates: status %d: %s", e.Op, e.Status, e.Message)
}

// errorBody is the JSON shape of a failed create.
type errorBody struct {
	Error string `json:"error"`
}
