package workflowmax

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "success status",
			statusCode: http.StatusOK,
			body:       `<?xml version="1.0" encoding="utf-8"?><Response><Status>SUCCESS</Status></Response>`,
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
			},
		},
		{
			name:       "non 200 status",
			statusCode: http.StatusServiceUnavailable,
			body:       `<Response><Status>SUCCESS</Status></Response>`,
			check: func(t *testing.T, err error) {
				var target *UnexpectedStatusError
				if !errors.As(err, &target) || target.StatusCode != http.StatusServiceUnavailable {
					t.Fatalf("expected UnexpectedStatusError(503), got %v", err)
				}
			},
		},
		{
			name:       "redirect is not success",
			statusCode: http.StatusFound,
			check: func(t *testing.T, err error) {
				var target *UnexpectedStatusError
				if !errors.As(err, &target) {
					t.Fatalf("expected UnexpectedStatusError, got %v", err)
				}
			},
		},
		{
			name:       "missing status element",
			statusCode: http.StatusOK,
			body:       `<Response><StaffList/></Response>`,
			check: func(t *testing.T, err error) {
				var target *MalformedResponseError
				if !errors.As(err, &target) {
					t.Fatalf("expected MalformedResponseError, got %v", err)
				}
			},
		},
		{
			name:       "body is not xml",
			statusCode: http.StatusOK,
			body:       `Service temporarily unavailable`,
			check: func(t *testing.T, err error) {
				var target *MalformedResponseError
				if !errors.As(err, &target) {
					t.Fatalf("expected MalformedResponseError, got %v", err)
				}
			},
		},
		{
			name:       "wrong root element",
			statusCode: http.StatusOK,
			body:       `<Error><Status>SUCCESS</Status></Error>`,
			check: func(t *testing.T, err error) {
				var target *MalformedResponseError
				if !errors.As(err, &target) {
					t.Fatalf("expected MalformedResponseError, got %v", err)
				}
			},
		},
		{
			name:       "application error carries description",
			statusCode: http.StatusOK,
			body:       `<Response><Status>ERROR</Status><ErrorDescription>Task is completed</ErrorDescription></Response>`,
			check: func(t *testing.T, err error) {
				var target *RemoteError
				if !errors.As(err, &target) {
					t.Fatalf("expected RemoteError, got %v", err)
				}
				if target.Message != "Task is completed" {
					t.Fatalf("expected exact description, got %q", target.Message)
				}
			},
		},
		{
			name:       "application error without description",
			statusCode: http.StatusOK,
			body:       `<Response><Status>ERROR</Status></Response>`,
			check: func(t *testing.T, err error) {
				var target *RemoteError
				if !errors.As(err, &target) || target.Message != "" {
					t.Fatalf("expected RemoteError with empty message, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, ValidateResponse(tt.statusCode, []byte(tt.body)))
		})
	}
}
