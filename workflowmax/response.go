package workflowmax

import (
	"encoding/xml"
	"net/http"
	"strings"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// envelope is the part of every <Response> document the validator inspects.
type envelope struct {
	XMLName          xml.Name `xml:"Response"`
	Status           *string  `xml:"Status"`
	ErrorDescription string   `xml:"ErrorDescription"`
}

// ValidateResponse checks the transport status and the Status field of the
// response envelope. It returns nil only for a 200 response whose Status is
// not ERROR; payload mapping must not start before it returned nil.
func ValidateResponse(statusCode int, body []byte) error {
	if statusCode != http.StatusOK {
		return &UnexpectedStatusError{StatusCode: statusCode, Body: truncate(string(body), 4096)}
	}

	var env envelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return &MalformedResponseError{Reason: "body is not a Response document", Err: err}
	}
	if env.Status == nil {
		return &MalformedResponseError{Reason: "missing Status element"}
	}

	if strings.TrimSpace(*env.Status) == StatusError {
		return &RemoteError{Message: strings.TrimSpace(env.ErrorDescription)}
	}
	return nil
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
