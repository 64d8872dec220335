package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/issuepulse/issuepulse/pkg/domain/interfaces"
	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Result caps per query variant. The bulk variant covers the whole
// project; the per-user variant only the caller's assignments.
const (
	bulkMaxResults = 1000
	myMaxResults   = 100
	isoDateFormat  = "2006-01-02"
)

// DashboardInput is the inbound query contract
type DashboardInput struct {
	Credentials model.Credentials
	ProjectKey  types.ProjectKey
	DateRange   model.DateRange
}

// Dashboard is the use case producing KPI dashboards from issue searches.
// Each run is independent and works on an immutable snapshot of fetched
// issues; nothing is cached between invocations.
type Dashboard struct {
	client     interfaces.IssueSearcher
	isResolved model.ResolvedClassifier
	nowFn      func() time.Time
}

// DashboardOption configures the Dashboard use case
type DashboardOption func(*Dashboard)

// WithClassifier overrides the resolved classification policy
func WithClassifier(classifier model.ResolvedClassifier) DashboardOption {
	return func(uc *Dashboard) {
		if classifier != nil {
			uc.isResolved = classifier
		}
	}
}

// WithClock overrides the time source (for tests)
func WithClock(nowFn func() time.Time) DashboardOption {
	return func(uc *Dashboard) {
		uc.nowFn = nowFn
	}
}

// NewDashboard creates a new Dashboard use case
func NewDashboard(client interfaces.IssueSearcher, opts ...DashboardOption) *Dashboard {
	uc := &Dashboard{
		client:     client,
		isResolved: model.DefaultClassifier(),
		nowFn:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (in *DashboardInput) validate() error {
	if err := in.Credentials.Validate(); err != nil {
		return err
	}
	if in.ProjectKey == "" {
		return goerr.Wrap(model.ErrConfigRequired, "project key is required")
	}
	if (in.DateRange.StartDate == "") != (in.DateRange.EndDate == "") {
		return goerr.Wrap(model.ErrConfigRequired, "startDate and endDate must be provided together",
			goerr.V("startDate", in.DateRange.StartDate),
			goerr.V("endDate", in.DateRange.EndDate))
	}
	return nil
}

// resolveDateRange defaults an empty range to the first day of the
// current month through today
func resolveDateRange(rng model.DateRange, now time.Time) model.DateRange {
	if !rng.IsZero() {
		return rng
	}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return model.DateRange{
		StartDate: firstOfMonth.Format(isoDateFormat),
		EndDate:   now.Format(isoDateFormat),
	}
}

// GetProjectDashboard runs the bulk query variant: every issue in the
// project within the date window, capped at 1000 records. The identity
// lookup runs concurrently with the search; its failure is tolerated by
// omitting the user from the result rather than aborting the query.
func (uc *Dashboard) GetProjectDashboard(ctx context.Context, input DashboardInput) (*model.Dashboard, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := uc.nowFn()
	rng := resolveDateRange(input.DateRange, now)
	logger := ctxlog.From(ctx).With("queryID", types.QueryID(uuid.New().String()))

	var issues []*model.Issue
	var identity *model.Identity

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		issues, err = uc.client.SearchIssues(egCtx, input.Credentials, model.SearchQuery{
			ProjectKey: input.ProjectKey,
			DateRange:  rng,
			MaxResults: bulkMaxResults,
		})
		return err
	})
	eg.Go(func() error {
		me, err := uc.client.GetMyself(egCtx, input.Credentials)
		if err != nil {
			// Partial result: the dashboard is still useful without
			// the caller identity attached.
			logger.Warn("identity lookup failed, continuing without user",
				"error", err)
			return nil
		}
		identity = me
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "project dashboard query failed",
			goerr.V("projectKey", input.ProjectKey))
	}

	logger.Info("issues fetched",
		"projectKey", input.ProjectKey,
		"dateRange", rng,
		"count", len(issues),
	)

	kpi, lists := Aggregate(issues, uc.isResolved, now)
	return &model.Dashboard{
		ProjectKey: input.ProjectKey,
		DateRange:  rng,
		User:       identity,
		KPI:        kpi,
		TopLists:   lists,
	}, nil
}

// GetMyDashboard runs the per-user query variant: issues in the project
// assigned to the authenticated caller, capped at 100 records. The search
// failure is terminal; there is no secondary call to tolerate.
func (uc *Dashboard) GetMyDashboard(ctx context.Context, input DashboardInput) (*model.Dashboard, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := uc.nowFn()
	rng := resolveDateRange(input.DateRange, now)

	issues, err := uc.client.SearchIssues(ctx, input.Credentials, model.SearchQuery{
		ProjectKey:      input.ProjectKey,
		DateRange:       rng,
		CurrentUserOnly: true,
		MaxResults:      myMaxResults,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "per-user dashboard query failed",
			goerr.V("projectKey", input.ProjectKey))
	}

	ctxlog.From(ctx).Info("assigned issues fetched",
		"projectKey", input.ProjectKey,
		"dateRange", rng,
		"count", len(issues),
	)

	kpi, lists := Aggregate(issues, uc.isResolved, now)
	return &model.Dashboard{
		ProjectKey: input.ProjectKey,
		DateRange:  rng,
		KPI:        kpi,
		TopLists:   lists,
	}, nil
}
