package core

import "fmt"

// ValidationError reports a missing or malformed request field. The HTTP
// layer maps it to a 400 response.
type ValidationError struct {
	Message string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// NotFoundError reports a transaction identifier with no matching row. The
// HTTP layer maps it to a 404 response naming the identifier.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Transaction with ID %d not found.", e.ID)
}
