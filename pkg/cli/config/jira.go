package config

import (
	"log/slog"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Jira holds issue tracker connection parameters supplied via flags or
// environment. The HTTP API accepts per-request credentials instead;
// these are for the one-shot report command.
type Jira struct {
	BaseURL  string
	Email    string
	APIToken string
}

// Flags returns CLI flags for Jira configuration
func (j *Jira) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jira-base-url",
			Usage:       "Jira site base URL (e.g. https://example.atlassian.net)",
			Category:    "Jira",
			Sources:     cli.EnvVars("ISSUEPULSE_JIRA_BASE_URL"),
			Destination: &j.BaseURL,
		},
		&cli.StringFlag{
			Name:        "jira-email",
			Usage:       "Account email for API authentication",
			Category:    "Jira",
			Sources:     cli.EnvVars("ISSUEPULSE_JIRA_EMAIL"),
			Destination: &j.Email,
		},
		&cli.StringFlag{
			Name:        "jira-api-token",
			Usage:       "API token for authentication",
			Category:    "Jira",
			Sources:     cli.EnvVars("ISSUEPULSE_JIRA_API_TOKEN"),
			Destination: &j.APIToken,
		},
	}
}

// Credentials returns the credential triple as a domain value
func (j *Jira) Credentials() model.Credentials {
	return model.Credentials{
		BaseURL:  j.BaseURL,
		Email:    j.Email,
		APIToken: j.APIToken,
	}
}

// IsConfigured checks if all connection parameters are present
func (j *Jira) IsConfigured() bool {
	return j.Credentials().IsComplete()
}

// LogValue returns structured log value with the token redacted
func (j Jira) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", j.BaseURL),
		slog.String("email", j.Email),
		slog.Bool("has_api_token", j.APIToken != ""),
	)
}
