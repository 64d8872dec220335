package interfaces

//go:generate moq -out mocks/issue_searcher_mock.go -pkg mocks . IssueSearcher

import (
	"context"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
)

// IssueSearcher defines the issue tracker API client. All operations are
// single-attempt network calls; credentials are passed explicitly on
// every call.
type IssueSearcher interface {
	// GetMyself calls the "who am I" endpoint
	GetMyself(ctx context.Context, creds model.Credentials) (*model.Identity, error)

	// ListProjects lists projects visible to the credentials
	ListProjects(ctx context.Context, creds model.Credentials) ([]*model.Project, error)

	// SearchIssues runs a structured issue search with a result cap and
	// an explicit field projection
	SearchIssues(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error)
}
