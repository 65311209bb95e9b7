package webhook

import (
	"fmt"
	"net/http"
)

// Stable machine-readable codes carried in every error response.
const (
	CodeMissingEventHeader      = 1
	CodeInvalidSignature        = 2
	CodeInvalidUserAgent        = 3
	CodeMalformedEventHeader    = 4
	CodeUnsupportedEventHeader  = 5
	CodeMalformedEventBody      = 6
	CodeMalformedEventBodyField = 7
	CodeUnhandledError          = 99
)

// ErrorCode is the JSON error envelope returned to webhook senders.
type ErrorCode struct {
	InternalCode int    `json:"internal_code"`
	Message      string `json:"message"`
}

func (e *ErrorCode) Error() string { return e.Message }

// StatusCode maps the error to its HTTP status: 500 for unhandled errors, 400 otherwise.
func (e *ErrorCode) StatusCode() int {
	if e.InternalCode == CodeUnhandledError {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

func NewMissingEventHeader() *ErrorCode {
	return &ErrorCode{InternalCode: CodeMissingEventHeader, Message: "Missing " + EventHeader + " header"}
}

func NewInvalidSignature() *ErrorCode {
	return &ErrorCode{InternalCode: CodeInvalidSignature, Message: "Invalid " + SignatureHeader + " signature"}
}

func NewInvalidUserAgent() *ErrorCode {
	return &ErrorCode{InternalCode: CodeInvalidUserAgent, Message: "Invalid User-Agent"}
}

func NewMalformedEventHeader() *ErrorCode {
	return &ErrorCode{InternalCode: CodeMalformedEventHeader, Message: "Malformed event header"}
}

func NewUnsupportedEventHeader(event string) *ErrorCode {
	return &ErrorCode{
		InternalCode: CodeUnsupportedEventHeader,
		Message:      fmt.Sprintf("Unsupported event header: '%s'", event),
	}
}

func NewMalformedEventBody(cause string) *ErrorCode {
	return &ErrorCode{
		InternalCode: CodeMalformedEventBody,
		Message:      fmt.Sprintf("Malformed event body: '%s'", cause),
	}
}

func NewMalformedEventBodyField(field, reason string) *ErrorCode {
	return &ErrorCode{
		InternalCode: CodeMalformedEventBodyField,
		Message:      fmt.Sprintf("Malformed event body field '%s': '%s'", field, reason),
	}
}

func NewUnhandledError(cause string) *ErrorCode {
	return &ErrorCode{
		InternalCode: CodeUnhandledError,
		Message:      fmt.Sprintf("Unhandled error: '%s'", cause),
	}
}
