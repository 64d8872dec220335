package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// DefaultResolvedStatuses is the fallback status name allowlist used when
// the API does not supply a status category. Matching is case-sensitive.
var DefaultResolvedStatuses = []string{"Done", "Resolved", "Closed"}

// ResolvedClassifier decides whether an issue counts as resolved. It is
// injectable so the classification policy stays explicit and swappable.
type ResolvedClassifier func(issue *Issue) bool

// NewResolvedClassifier builds the canonical classifier: the status
// category field wins when present, otherwise the status name is matched
// against the allowlist.
func NewResolvedClassifier(allowlist []string) ResolvedClassifier {
	names := make(map[string]struct{}, len(allowlist))
	for _, name := range allowlist {
		names[name] = struct{}{}
	}
	return func(issue *Issue) bool {
		if issue.StatusCategory != "" {
			return issue.StatusCategory == StatusCategoryDone
		}
		_, ok := names[issue.Status]
		return ok
	}
}

// DefaultClassifier returns the classifier with the default allowlist
func DefaultClassifier() ResolvedClassifier {
	return NewResolvedClassifier(DefaultResolvedStatuses)
}

// ClassifyConfig is the optional file-based override for the resolved
// classification policy
type ClassifyConfig struct {
	// ResolvedStatuses replaces the default allowlist when non-empty
	ResolvedStatuses []string `yaml:"resolved_statuses"`
	// UseStatusCategory disables the category shortcut when set to false
	UseStatusCategory *bool `yaml:"use_status_category"`
}

// Validate validates the classify configuration
func (c *ClassifyConfig) Validate() error {
	for _, name := range c.ResolvedStatuses {
		if name == "" {
			return goerr.New("resolved_statuses entries must be non-empty")
		}
	}
	return nil
}

// Classifier builds a ResolvedClassifier from the configuration
func (c *ClassifyConfig) Classifier() ResolvedClassifier {
	allowlist := c.ResolvedStatuses
	if len(allowlist) == 0 {
		allowlist = DefaultResolvedStatuses
	}
	byName := NewResolvedClassifier(allowlist)
	if c.UseStatusCategory != nil && !*c.UseStatusCategory {
		names := make(map[string]struct{}, len(allowlist))
		for _, name := range allowlist {
			names[name] = struct{}{}
		}
		return func(issue *Issue) bool {
			_, ok := names[issue.Status]
			return ok
		}
	}
	return byName
}
