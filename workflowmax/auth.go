package workflowmax

import (
	"net/url"
	"strings"
)

// Credentials are the static API secrets issued by WorkflowMax.
// Empty values are sent as-is; the service rejects them.
type Credentials struct {
	APIKey     string
	AccountKey string
}

// AuthFragment renders the query string that authenticates every request.
func (c Credentials) AuthFragment() string {
	return "?apiKey=" + url.QueryEscape(c.APIKey) + "&accountKey=" + url.QueryEscape(c.AccountKey)
}

// requestURI joins a base URL, an endpoint path, the auth fragment and
// optional extra query parameters in the order the service expects.
func requestURI(baseURL, endpointPath string, creds Credentials, extra url.Values) string {
	uri := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpointPath, "/") + creds.AuthFragment()
	if len(extra) > 0 {
		uri += "&" + extra.Encode()
	}
	return uri
}
