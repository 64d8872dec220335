package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/montanaflynn/stats"
)

// topListSize is the length cap of each ranked list
const topListSize = 5

// Defaults rendered into ranked list projections when a field is absent.
// These are part of the data contract, not display strings.
const (
	unassignedLabel = "Unassigned"
	noPriorityLabel = "None"
)

// Aggregate transforms one fetched issue set into the scalar KPIs and the
// four ranked top-5 lists. Pure: no I/O, no mutation of the input, and
// deterministic for the same input modulo now, which only feeds the
// oldest list's age column. Every sort is stable so ties preserve fetch
// order and repeated runs yield identical output.
func Aggregate(issues []*model.Issue, isResolved model.ResolvedClassifier, now time.Time) (model.KPI, model.TopLists) {
	if isResolved == nil {
		isResolved = model.DefaultClassifier()
	}

	kpi := computeKPI(issues, isResolved)
	lists := model.TopLists{
		Recent:  recentIssues(issues),
		Oldest:  oldestUnresolved(issues, isResolved, now),
		Popular: popularIssues(issues),
		Hot:     hotIssues(issues),
	}
	return kpi, lists
}

func computeKPI(issues []*model.Issue, isResolved model.ResolvedClassifier) model.KPI {
	kpi := model.KPI{TotalIssues: len(issues)}

	var durations []float64
	for _, issue := range issues {
		if isResolved(issue) {
			kpi.ResolvedIssues++
		}
		if days, ok := issue.ResolutionDays(); ok {
			durations = append(durations, float64(days))
		}
	}

	if kpi.TotalIssues > 0 {
		rate := float64(kpi.ResolvedIssues) / float64(kpi.TotalIssues) * 100
		kpi.ResolutionRate = int(math.Round(rate))
	}
	if len(durations) > 0 {
		mean, err := stats.Mean(durations)
		if err == nil {
			kpi.AvgResolutionDays = int(math.Round(mean))
		}
	}
	return kpi
}

func issueRef(issue *model.Issue) model.IssueRef {
	ref := model.IssueRef{
		Key:      issue.Key,
		Summary:  issue.Summary,
		Status:   issue.Status,
		Created:  issue.Created,
		Assignee: issue.Assignee,
	}
	if ref.Assignee == "" {
		ref.Assignee = unassignedLabel
	}
	return ref
}

func priorityOf(issue *model.Issue) string {
	if issue.Priority == "" {
		return noPriorityLabel
	}
	return issue.Priority
}

// sortedCopy returns a stable-sorted copy so the caller's slice keeps its
// fetch order for the other lists
func sortedCopy(issues []*model.Issue, less func(a, b *model.Issue) bool) []*model.Issue {
	out := make([]*model.Issue, len(issues))
	copy(out, issues)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func recentIssues(issues []*model.Issue) []model.RecentIssue {
	sorted := sortedCopy(issues, func(a, b *model.Issue) bool {
		return a.Created.After(b.Created)
	})
	out := make([]model.RecentIssue, 0, topListSize)
	for _, issue := range sorted {
		if len(out) == topListSize {
			break
		}
		out = append(out, model.RecentIssue{
			IssueRef: issueRef(issue),
			Priority: priorityOf(issue),
		})
	}
	return out
}

func oldestUnresolved(issues []*model.Issue, isResolved model.ResolvedClassifier, now time.Time) []model.OldestIssue {
	unresolved := make([]*model.Issue, 0, len(issues))
	for _, issue := range issues {
		if !isResolved(issue) {
			unresolved = append(unresolved, issue)
		}
	}
	// Undated records have no age; they rank after every dated record.
	sorted := sortedCopy(unresolved, func(a, b *model.Issue) bool {
		if a.HasCreated() != b.HasCreated() {
			return a.HasCreated()
		}
		return a.Created.Before(b.Created)
	})
	out := make([]model.OldestIssue, 0, topListSize)
	for _, issue := range sorted {
		if len(out) == topListSize {
			break
		}
		out = append(out, model.OldestIssue{
			IssueRef: issueRef(issue),
			Priority: priorityOf(issue),
			DaysOld:  issue.AgeDays(now),
		})
	}
	return out
}

func popularIssues(issues []*model.Issue) []model.PopularIssue {
	sorted := sortedCopy(issues, func(a, b *model.Issue) bool {
		return a.WatchCount > b.WatchCount
	})
	out := make([]model.PopularIssue, 0, topListSize)
	for _, issue := range sorted {
		if len(out) == topListSize {
			break
		}
		out = append(out, model.PopularIssue{
			IssueRef:   issueRef(issue),
			WatchCount: issue.WatchCount,
		})
	}
	return out
}

func hotIssues(issues []*model.Issue) []model.HotIssue {
	sorted := sortedCopy(issues, func(a, b *model.Issue) bool {
		return a.CommentCount > b.CommentCount
	})
	out := make([]model.HotIssue, 0, topListSize)
	for _, issue := range sorted {
		if len(out) == topListSize {
			break
		}
		out = append(out, model.HotIssue{
			IssueRef:     issueRef(issue),
			CommentCount: issue.CommentCount,
		})
	}
	return out
}
