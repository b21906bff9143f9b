package workflowmax

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	PlainBaseURL  = "http://api.workflowmax.com/"
	SecureBaseURL = "https://api.workflowmax.com/"

	defaultTimeout = 30 * time.Second
)

// API defines the WorkflowMax operations exposed by the connectors.
type API interface {
	ListStaff(ctx context.Context) ([]Staff, error)
	ListJobsForStaff(ctx context.Context, staffID string, opts ...JobOption) ([]Job, error)
	ListTimeForStaff(ctx context.Context, staffID, from, to string) ([]TimeEntry, error)
	AddTimeEntry(ctx context.Context, in TimesheetInput) (TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, timeID string, in TimesheetInput) (TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, timeID string) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	Credentials Credentials
	// Secure selects the TLS endpoint. Ignored when BaseURL is set.
	Secure bool
	// BaseURL overrides both fixed endpoints, e.g. for a proxy.
	BaseURL    string
	Timeout    time.Duration
	HTTPClient httpDoer
	Authorizer Authorizer
	Logger     *logrus.Entry
}

// Client holds what all connectors share: credentials, the transport and
// the optional authorizer.
type Client struct {
	credentials Credentials
	secure      bool
	baseURL     string
	httpClient  httpDoer
	authorizer  Authorizer
	logger      *logrus.Entry
}

type transport struct {
	baseURL string
	doer    httpDoer
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
		}
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Client{
		credentials: cfg.Credentials,
		secure:      cfg.Secure,
		baseURL:     baseURL,
		httpClient:  doer,
		authorizer:  cfg.Authorizer,
		logger:      logger.WithField("component", "workflowmax"),
	}, nil
}

// transport returns the endpoint for the plaintext or TLS API, bound to the
// shared HTTP client so connections are reused across calls.
func (c *Client) transport(secure bool) transport {
	if c.baseURL != "" {
		return transport{baseURL: c.baseURL, doer: c.httpClient}
	}
	if secure {
		return transport{baseURL: SecureBaseURL, doer: c.httpClient}
	}
	return transport{baseURL: PlainBaseURL, doer: c.httpClient}
}

func (c *Client) authorize(ctx context.Context, action Action, staffID string) error {
	if c.authorizer == nil {
		return nil
	}
	return c.authorizer.Authorize(ctx, action, staffID)
}

// doXML sends one request, validates the envelope and decodes the body into out.
func (c *Client) doXML(ctx context.Context, method, endpointPath string, query url.Values, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := xml.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	tr := c.transport(c.secure)
	req, err := http.NewRequestWithContext(ctx, method, requestURI(tr.baseURL, endpointPath, c.credentials, query), bodyReader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, endpointPath, err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")
	if body != nil {
		req.Header.Set("Content-Type", "application/xml; charset=UTF-8")
	}

	log := c.logger.WithFields(logrus.Fields{
		"requestID": uuid.NewString(),
		"method":    method,
		"path":      endpointPath,
	})
	started := time.Now()

	resp, err := tr.doer.Do(req)
	if err != nil {
		log.WithError(err).Warn("workflowmax request failed")
		return fmt.Errorf("request %s %s failed: %w", method, endpointPath, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, endpointPath, err)
	}
	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(started),
	}).Debug("workflowmax request")

	if err := ValidateResponse(resp.StatusCode, data); err != nil {
		var remote *RemoteError
		if errors.As(err, &remote) {
			log.WithField("error", remote.Message).Debug("workflowmax reported an error")
		}
		return err
	}

	if out == nil {
		return nil
	}
	if err := xml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response %s %s: %w", method, endpointPath, err)
	}
	return nil
}
