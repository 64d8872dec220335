package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/interfaces"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// searchFields is the explicit field projection requested from the search
// endpoint; everything the aggregation pipeline consumes and nothing more
const searchFields = "summary,status,created,resolutiondate,assignee,priority,watches,comment"

// jiraTimeFormat is the timestamp layout Jira Cloud emits for created and
// resolutiondate fields
const jiraTimeFormat = "2006-01-02T15:04:05.000-0700"

const defaultTimeout = 15 * time.Second

// Client is the REST client for the Jira Cloud v3 API. Credentials are
// passed per call; the client itself holds no session state.
type Client struct {
	httpClient *http.Client
}

var _ interfaces.IssueSearcher = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new Jira API client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func basicAuth(creds model.Credentials) string {
	return base64.StdEncoding.EncodeToString([]byte(creds.Email + ":" + creds.APIToken))
}

func apiURL(creds model.Credentials, endpoint string, query url.Values) string {
	base := strings.TrimRight(creds.BaseURL, "/")
	u := base + "/rest/api/3" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get issues a single authenticated GET request. One attempt only; no
// retry or backoff. Transport failures are tagged CONNECTION_ERROR.
func (c *Client) get(ctx context.Context, creds model.Credentials, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", u))
	}
	req.Header.Set("Authorization", "Basic "+basicAuth(creds))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request to issue tracker failed",
			goerr.T(model.ErrTagTransport),
			goerr.V("code", types.ErrCodeConnectionError))
	}
	return resp, nil
}

// upstreamError decodes the Jira error payload and propagates its first
// message when available, paired with the original HTTP status
func upstreamError(resp *http.Response, fallback string) error {
	var payload struct {
		ErrorMessages []string `json:"errorMessages"`
	}
	message := fallback
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && len(payload.ErrorMessages) > 0 {
		message = payload.ErrorMessages[0]
	}
	return goerr.New(message,
		goerr.T(model.ErrTagUpstream),
		goerr.V("code", types.ErrCodeUpstreamError),
		goerr.V("status", resp.StatusCode))
}

// GetMyself calls the "who am I" endpoint to verify the credentials
func (c *Client) GetMyself(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.get(ctx, creds, apiURL(creds, "/myself", nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, goerr.Wrap(model.ErrInvalidCredentials, "identity check rejected",
			goerr.V("status", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, goerr.New("identity check failed",
			goerr.T(model.ErrTagAuth),
			goerr.V("code", types.AuthFailedCode(resp.StatusCode)),
			goerr.V("status", resp.StatusCode))
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, goerr.Wrap(err, "failed to decode identity response")
	}
	return &identity, nil
}

// ListProjects lists the projects visible to the credentials
func (c *Client) ListProjects(ctx context.Context, creds model.Credentials) ([]*model.Project, error) {
	if !creds.IsComplete() {
		return nil, goerr.Wrap(model.ErrConfigRequired, "credentials are incomplete")
	}

	resp, err := c.get(ctx, creds, apiURL(creds, "/project/search", nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamError(resp, "failed to fetch projects")
	}

	var payload struct {
		Values []*model.Project `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode project list")
	}
	return payload.Values, nil
}

// SearchIssues runs a JQL search with a result cap and the fixed field
// projection, converting the wire format into domain issue records
func (c *Client) SearchIssues(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
	if !creds.IsComplete() {
		return nil, goerr.Wrap(model.ErrConfigRequired, "credentials are incomplete")
	}
	if query.ProjectKey == "" {
		return nil, goerr.Wrap(model.ErrConfigRequired, "project key is required")
	}

	jql := buildJQL(query)
	q := url.Values{}
	q.Set("jql", jql)
	if query.MaxResults > 0 {
		q.Set("maxResults", strconv.Itoa(query.MaxResults))
	}
	q.Set("fields", searchFields)

	resp, err := c.get(ctx, creds, apiURL(creds, "/search", q))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, goerr.Wrap(model.ErrInvalidCredentials, "issue search rejected",
			goerr.V("status", resp.StatusCode),
			goerr.V("jql", jql))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, goerr.Wrap(upstreamError(resp, "failed to fetch issues"), "issue search failed",
			goerr.V("jql", jql))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response")
	}

	issues := make([]*model.Issue, 0, len(payload.Issues))
	for _, w := range payload.Issues {
		issues = append(issues, w.toIssue())
	}
	return issues, nil
}

// Wire types mirror the subset of the Jira search payload selected by
// searchFields.
type searchResponse struct {
	Issues []wireIssue `json:"issues"`
	Total  int         `json:"total"`
}

type wireIssue struct {
	Key    string     `json:"key"`
	Fields wireFields `json:"fields"`
}

type wireFields struct {
	Summary string `json:"summary"`
	Status  struct {
		Name           string `json:"name"`
		StatusCategory *struct {
			Key string `json:"key"`
		} `json:"statusCategory"`
	} `json:"status"`
	Created        string `json:"created"`
	ResolutionDate string `json:"resolutiondate"`
	Assignee       *struct {
		DisplayName string `json:"displayName"`
	} `json:"assignee"`
	Priority *struct {
		Name string `json:"name"`
	} `json:"priority"`
	Watches *struct {
		WatchCount int `json:"watchCount"`
	} `json:"watches"`
	Comment *struct {
		Total int `json:"total"`
	} `json:"comment"`
}

// parseJiraTime tolerates both the Jira Cloud layout and plain RFC 3339.
// A malformed timestamp yields the zero time; the pipeline treats such
// records as undated rather than failing the query.
func parseJiraTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(jiraTimeFormat, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}

func (w wireIssue) toIssue() *model.Issue {
	issue := &model.Issue{
		Key:     types.IssueKey(w.Key),
		Summary: w.Fields.Summary,
		Status:  w.Fields.Status.Name,
		Created: parseJiraTime(w.Fields.Created),
	}
	if w.Fields.Status.StatusCategory != nil {
		issue.StatusCategory = w.Fields.Status.StatusCategory.Key
	}
	if resolved := parseJiraTime(w.Fields.ResolutionDate); !resolved.IsZero() {
		issue.Resolved = &resolved
	}
	if w.Fields.Assignee != nil {
		issue.Assignee = w.Fields.Assignee.DisplayName
	}
	if w.Fields.Priority != nil {
		issue.Priority = w.Fields.Priority.Name
	}
	if w.Fields.Watches != nil {
		issue.WatchCount = w.Fields.Watches.WatchCount
	}
	if w.Fields.Comment != nil {
		issue.CommentCount = w.Fields.Comment.Total
	}
	return issue
}
