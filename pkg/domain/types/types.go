package types

// ProjectKey represents a Jira project key (e.g. "PROJ")
type ProjectKey string

// String returns the string representation
func (k ProjectKey) String() string {
	return string(k)
}

// IssueKey represents a Jira issue key (e.g. "PROJ-123")
type IssueKey string

// String returns the string representation
func (k IssueKey) String() string {
	return string(k)
}

// AccountID represents a Jira account identifier
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}

// QueryID identifies a single user-triggered dashboard query in logs
type QueryID string

// String returns the string representation
func (id QueryID) String() string {
	return string(id)
}
