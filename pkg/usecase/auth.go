package usecase

import (
	"context"

	"github.com/issuepulse/issuepulse/pkg/domain/interfaces"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Auth verifies issue tracker credentials and lists accessible projects
type Auth struct {
	client interfaces.IssueSearcher
}

// NewAuth creates a new Auth use case
func NewAuth(client interfaces.IssueSearcher) *Auth {
	return &Auth{client: client}
}

// VerifyIdentity checks the credentials against the "who am I" endpoint.
// Incomplete credentials are rejected before any network call.
func (uc *Auth) VerifyIdentity(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	identity, err := uc.client.GetMyself(ctx, creds)
	if err != nil {
		return nil, goerr.Wrap(err, "identity verification failed")
	}
	return identity, nil
}

// TestConnection reports whether the credentials can reach the tracker
func (uc *Auth) TestConnection(ctx context.Context, creds model.Credentials) error {
	_, err := uc.VerifyIdentity(ctx, creds)
	return err
}

// ListProjects lists the projects visible to the credentials
func (uc *Auth) ListProjects(ctx context.Context, creds model.Credentials) ([]*model.Project, error) {
	if !creds.IsComplete() {
		return nil, goerr.Wrap(model.ErrConfigRequired, "credentials are incomplete")
	}
	projects, err := uc.client.ListProjects(ctx, creds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}
	return projects, nil
}
