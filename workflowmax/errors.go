package workflowmax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when a mapping function receives no XML node.
var ErrEmptyInput = errors.New("invalid method call: the XML element is empty")

// ErrPermissionDenied is wrapped by every PermissionError.
var ErrPermissionDenied = errors.New("permission denied")

// InvalidArgumentError reports mandatory parameters that were missing or empty.
// It is always returned before a request is sent.
type InvalidArgumentError struct {
	Params []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("mandatory parameters missing: %s", strings.Join(e.Params, ", "))
}

// UnexpectedStatusError is returned when the service answers with a status other than 200.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server responded with non 200 status code %d", e.StatusCode)
	}
	return fmt.Sprintf("server responded with non 200 status code %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when the body is not a response envelope with a status.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: %s: %v", e.Reason, e.Err)
	}
	return "malformed response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// RemoteError carries the ErrorDescription of a response whose Status is ERROR.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "workflowmax: " + e.Message
}

// FieldError reports a payload value that could not be parsed into its record field.
type FieldError struct {
	Entity string
	Field  string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("parse %s.%s %q: %v", e.Entity, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PermissionError is returned by an Authorizer that rejects an action.
type PermissionError struct {
	Action  Action
	StaffID string
}

func (e *PermissionError) Error() string {
	if e.StaffID == "" {
		return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Action)
	}
	return fmt.Sprintf("%s: %s for staff %q", ErrPermissionDenied, e.Action, e.StaffID)
}

func (e *PermissionError) Unwrap() error {
	return ErrPermissionDenied
}

// requireParams returns an InvalidArgumentError naming every empty value.
// pairs alternates name and value.
func requireParams(pairs ...string) error {
	if missing := missingParams(pairs...); len(missing) > 0 {
		return &InvalidArgumentError{Params: missing}
	}
	return nil
}

func missingParams(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}
