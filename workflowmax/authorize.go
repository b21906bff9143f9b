package workflowmax

import (
	"context"
	"strings"
)

// Action names an operation checked by an Authorizer.
type Action string

const (
	ActionListTime   Action = "time.list"
	ActionAddTime    Action = "time.add"
	ActionUpdateTime Action = "time.update"
	ActionDeleteTime Action = "time.delete"
)

// Authorizer decides whether the caller may perform an action for a staff
// member. It runs before any request is sent.
type Authorizer interface {
	Authorize(ctx context.Context, action Action, staffID string) error
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(ctx context.Context, action Action, staffID string) error

func (f AuthorizerFunc) Authorize(ctx context.Context, action Action, staffID string) error {
	return f(ctx, action, staffID)
}

// StaffAllowList permits time operations only for the listed staff IDs.
// An empty list permits everything. Deletes carry no staff ID and need
// AllowDelete unless the list is empty.
type StaffAllowList struct {
	StaffIDs    []string
	AllowDelete bool
}

func (l StaffAllowList) Authorize(_ context.Context, action Action, staffID string) error {
	if len(l.StaffIDs) == 0 {
		return nil
	}
	if action == ActionDeleteTime {
		if l.AllowDelete {
			return nil
		}
		return &PermissionError{Action: action}
	}
	staffID = strings.TrimSpace(staffID)
	for _, allowed := range l.StaffIDs {
		if strings.TrimSpace(allowed) == staffID {
			return nil
		}
	}
	return &PermissionError{Action: action, StaffID: staffID}
}
