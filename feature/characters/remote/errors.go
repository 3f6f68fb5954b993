package remote

import (
	"errors"
	"fmt"
)

// NetworkError means no response was received.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: network error: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError means a read answered with a non-success status.
type ServerError struct {
	Method string
	URL    string
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s %s: server responded %d", e.Method, e.URL, e.Status)
}

// RejectedError means the server declined a write.
type RejectedError struct {
	Method string
	URL    string
	Status int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s %s: write rejected with %d", e.Method, e.URL, e.Status)
}

// DecodeError means a success response did not contain a valid record.
type DecodeError struct {
	Method string
	URL    string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: invalid response body: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// Status returns the HTTP status carried by a ServerError or RejectedError.
func Status(err error) (int, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status, true
	}
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Status, true
	}
	return 0, false
}
