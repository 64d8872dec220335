package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Credentials is the connection parameter triple for the issue tracker.
// It is an explicit value passed into every API call; there is no ambient
// session state.
type Credentials struct {
	BaseURL  string `json:"jiraUrl"`
	Email    string `json:"email"`
	APIToken string `json:"apiToken"`
}

// IsComplete reports whether all three fields are present
func (c Credentials) IsComplete() bool {
	return c.BaseURL != "" && c.Email != "" && c.APIToken != ""
}

// Validate checks that all fields are present and returns a
// MISSING_CREDENTIALS tagged error naming the empty fields otherwise
func (c Credentials) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "jiraUrl")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.APIToken == "" {
		missing = append(missing, "apiToken")
	}
	if len(missing) > 0 {
		return goerr.Wrap(ErrMissingCredentials, "credential fields are empty",
			goerr.V("fields", strings.Join(missing, ",")))
	}
	return nil
}

// LogValue returns structured log value with the token redacted
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", c.BaseURL),
		slog.String("email", c.Email),
		slog.Bool("has_token", c.APIToken != ""),
	)
}
