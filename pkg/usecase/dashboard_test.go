package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/interfaces/mocks"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func validCreds() model.Credentials {
	return model.Credentials{
		BaseURL:  "https://example.atlassian.net",
		Email:    "dev@example.com",
		APIToken: "token-123",
	}
}

func TestGetProjectDashboard(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)

	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return []*model.Issue{
				{Key: "PROJ-1", Summary: "first", Status: "Done", StatusCategory: model.StatusCategoryDone, Created: created},
				{Key: "PROJ-2", Summary: "second", Status: "To Do", Created: created.AddDate(0, 0, 1)},
			}, nil
		},
		GetMyselfFunc: func(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
			return &model.Identity{AccountID: "acc-1", DisplayName: "Dev"}, nil
		},
	}

	uc := usecase.NewDashboard(mock, usecase.WithClock(func() time.Time {
		return time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	}))

	dashboard, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
		Credentials: validCreds(),
		ProjectKey:  "PROJ",
	})
	gt.NoError(t, err)
	gt.V(t, dashboard).NotNil()

	gt.Equal(t, dashboard.ProjectKey, types.ProjectKey("PROJ"))
	gt.Equal(t, dashboard.KPI.TotalIssues, 2)
	gt.Equal(t, dashboard.KPI.ResolvedIssues, 1)
	gt.Equal(t, dashboard.KPI.ResolutionRate, 50)
	gt.V(t, dashboard.User).NotNil()
	gt.Equal(t, dashboard.User.DisplayName, "Dev")

	// Empty range defaulted to first of month through today
	gt.Equal(t, dashboard.DateRange.StartDate, "2026-09-01")
	gt.Equal(t, dashboard.DateRange.EndDate, "2026-09-15")

	calls := mock.SearchIssuesCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].Query.ProjectKey, types.ProjectKey("PROJ"))
	gt.Equal(t, calls[0].Query.MaxResults, 1000)
	gt.False(t, calls[0].Query.CurrentUserOnly)
	gt.Equal(t, calls[0].Query.DateRange.StartDate, "2026-09-01")
}

func TestGetProjectDashboardExplicitRange(t *testing.T) {
	ctx := context.Background()
	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return nil, nil
		},
		GetMyselfFunc: func(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
			return &model.Identity{AccountID: "acc-1"}, nil
		},
	}
	uc := usecase.NewDashboard(mock)

	dashboard, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
		Credentials: validCreds(),
		ProjectKey:  "PROJ",
		DateRange:   model.DateRange{StartDate: "2026-07-01", EndDate: "2026-07-31"},
	})
	gt.NoError(t, err)
	gt.Equal(t, dashboard.DateRange.StartDate, "2026-07-01")
	gt.Equal(t, dashboard.DateRange.EndDate, "2026-07-31")

	calls := mock.SearchIssuesCalls()
	gt.Equal(t, len(calls), 1)
	gt.Equal(t, calls[0].Query.DateRange.EndDate, "2026-07-31")
}

func TestGetProjectDashboardIdentityFailureTolerated(t *testing.T) {
	ctx := context.Background()
	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return []*model.Issue{
				{Key: "PROJ-1", Summary: "only", Status: "To Do", Created: time.Now()},
			}, nil
		},
		GetMyselfFunc: func(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
			return nil, errors.New("myself endpoint down")
		},
	}
	uc := usecase.NewDashboard(mock)

	dashboard, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
		Credentials: validCreds(),
		ProjectKey:  "PROJ",
	})
	gt.NoError(t, err)
	gt.Nil(t, dashboard.User)
	gt.Equal(t, dashboard.KPI.TotalIssues, 1)
}

func TestGetProjectDashboardSearchFailureTerminal(t *testing.T) {
	ctx := context.Background()
	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return nil, errors.New("search exploded")
		},
		GetMyselfFunc: func(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
			return &model.Identity{AccountID: "acc-1"}, nil
		},
	}
	uc := usecase.NewDashboard(mock)

	_, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
		Credentials: validCreds(),
		ProjectKey:  "PROJ",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("project dashboard query failed")
}

func TestGetMyDashboard(t *testing.T) {
	ctx := context.Background()
	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return []*model.Issue{
				{Key: "PROJ-9", Summary: "mine", Status: "In Progress", Created: time.Now(), Assignee: "Dev"},
			}, nil
		},
	}
	uc := usecase.NewDashboard(mock)

	dashboard, err := uc.GetMyDashboard(ctx, usecase.DashboardInput{
		Credentials: validCreds(),
		ProjectKey:  "PROJ",
		DateRange:   model.DateRange{StartDate: "2026-09-01", EndDate: "2026-09-15"},
	})
	gt.NoError(t, err)
	gt.Nil(t, dashboard.User)
	gt.Equal(t, dashboard.KPI.TotalIssues, 1)

	calls := mock.SearchIssuesCalls()
	gt.Equal(t, len(calls), 1)
	gt.B(t, calls[0].Query.CurrentUserOnly).True()
	gt.Equal(t, calls[0].Query.MaxResults, 100)

	// The per-user variant never touches the identity endpoint
	gt.Equal(t, len(mock.GetMyselfCalls()), 0)
}

func TestDashboardInputValidation(t *testing.T) {
	ctx := context.Background()
	mock := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, creds model.Credentials, query model.SearchQuery) ([]*model.Issue, error) {
			return nil, nil
		},
		GetMyselfFunc: func(ctx context.Context, creds model.Credentials) (*model.Identity, error) {
			return &model.Identity{AccountID: "acc-1"}, nil
		},
	}
	uc := usecase.NewDashboard(mock)

	t.Run("missing credentials", func(t *testing.T) {
		_, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
			ProjectKey: "PROJ",
		})
		gt.Error(t, err)
		gt.Equal(t, model.CodeOf(err), types.ErrCodeMissingCredentials)
	})

	t.Run("missing project key", func(t *testing.T) {
		_, err := uc.GetProjectDashboard(ctx, usecase.DashboardInput{
			Credentials: validCreds(),
		})
		gt.Error(t, err)
		gt.Equal(t, model.CodeOf(err), types.ErrCodeConfigRequired)
	})

	t.Run("one-sided date range", func(t *testing.T) {
		_, err := uc.GetMyDashboard(ctx, usecase.DashboardInput{
			Credentials: validCreds(),
			ProjectKey:  "PROJ",
			DateRange:   model.DateRange{StartDate: "2026-09-01"},
		})
		gt.Error(t, err)
		gt.Equal(t, model.CodeOf(err), types.ErrCodeConfigRequired)
	})

	t.Run("validation short-circuits before search", func(t *testing.T) {
		gt.Equal(t, len(mock.SearchIssuesCalls()), 0)
	})
}
