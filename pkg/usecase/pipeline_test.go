package usecase_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
	"github.com/issuepulse/issuepulse/pkg/domain/types"
	"github.com/issuepulse/issuepulse/pkg/usecase"
	"github.com/m-mizutani/gt"
)

var testNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

func testIssue(key string, created time.Time, mutate func(*model.Issue)) *model.Issue {
	issue := &model.Issue{
		Key:     types.IssueKey(key),
		Summary: "summary of " + key,
		Status:  "In Progress",
		Created: created,
	}
	if mutate != nil {
		mutate(issue)
	}
	return issue
}

func TestAggregateScenario(t *testing.T) {
	// 10 issues created across a month, 3 with status Done, one issue
	// with watchCount 42 and no others above 5
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	var issues []*model.Issue
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("PROJ-%d", i+1)
		issue := testIssue(key, base.AddDate(0, 0, i*3), nil)
		if i < 3 {
			issue.Status = "Done"
			resolved := issue.Created.AddDate(0, 0, 2)
			issue.Resolved = &resolved
		}
		issues = append(issues, issue)
	}
	issues[6].WatchCount = 42
	issues[2].WatchCount = 5

	kpi, lists := usecase.Aggregate(issues, nil, testNow)

	gt.Equal(t, kpi.TotalIssues, 10)
	gt.Equal(t, kpi.ResolvedIssues, 3)
	gt.Equal(t, kpi.ResolutionRate, 30)
	gt.Equal(t, kpi.AvgResolutionDays, 2)

	// Popular leads with the heavily watched issue
	gt.Equal(t, len(lists.Popular), 5)
	gt.Equal(t, lists.Popular[0].Key, types.IssueKey("PROJ-7"))
	gt.Equal(t, lists.Popular[0].WatchCount, 42)

	// Oldest excludes every Done issue and is sorted ascending
	gt.Equal(t, len(lists.Oldest), 5)
	for _, item := range lists.Oldest {
		gt.NotEqual(t, item.Status, "Done")
	}
	gt.Equal(t, lists.Oldest[0].Key, types.IssueKey("PROJ-4"))
	for i := 1; i < len(lists.Oldest); i++ {
		gt.True(t, !lists.Oldest[i].Created.Before(lists.Oldest[i-1].Created))
	}

	// Recent is sorted descending by creation time
	gt.Equal(t, len(lists.Recent), 5)
	gt.Equal(t, lists.Recent[0].Key, types.IssueKey("PROJ-10"))
	for i := 1; i < len(lists.Recent); i++ {
		gt.True(t, !lists.Recent[i].Created.After(lists.Recent[i-1].Created))
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	kpi, lists := usecase.Aggregate(nil, nil, testNow)

	gt.Equal(t, kpi.TotalIssues, 0)
	gt.Equal(t, kpi.ResolvedIssues, 0)
	gt.Equal(t, kpi.ResolutionRate, 0)
	gt.Equal(t, kpi.AvgResolutionDays, 0)
	gt.Equal(t, len(lists.Recent), 0)
	gt.Equal(t, len(lists.Oldest), 0)
	gt.Equal(t, len(lists.Popular), 0)
	gt.Equal(t, len(lists.Hot), 0)
}

func TestAggregateListsShorterThanCap(t *testing.T) {
	issues := []*model.Issue{
		testIssue("PROJ-1", testNow.AddDate(0, 0, -3), nil),
		testIssue("PROJ-2", testNow.AddDate(0, 0, -2), func(i *model.Issue) {
			i.Status = "Done"
			i.StatusCategory = model.StatusCategoryDone
		}),
		testIssue("PROJ-3", testNow.AddDate(0, 0, -1), nil),
	}

	_, lists := usecase.Aggregate(issues, nil, testNow)

	gt.Equal(t, len(lists.Recent), 3)
	gt.Equal(t, len(lists.Popular), 3)
	gt.Equal(t, len(lists.Hot), 3)
	// The done issue is filtered out of oldest
	gt.Equal(t, len(lists.Oldest), 2)
	gt.Equal(t, lists.Oldest[0].Key, types.IssueKey("PROJ-1"))
	gt.Equal(t, lists.Oldest[0].DaysOld, 3)
}

func TestAggregateAvgResolutionDays(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ceil per issue then rounded mean", func(t *testing.T) {
		// fast resolves within the day (ceil 1), slow after 3 days and
		// change (ceil 4)
		fast := created.Add(30 * time.Minute)
		slow := created.AddDate(0, 0, 3).Add(time.Hour)
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) { i.Resolved = &fast }),
			testIssue("PROJ-2", created, func(i *model.Issue) { i.Resolved = &slow }),
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		// mean(1, 4) = 2.5 rounds to 3
		gt.Equal(t, kpi.AvgResolutionDays, 3)
	})

	t.Run("issues without timestamps are ignored", func(t *testing.T) {
		resolved := created.AddDate(0, 0, 2)
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) { i.Resolved = &resolved }),
			testIssue("PROJ-2", created, nil),
			testIssue("PROJ-3", time.Time{}, func(i *model.Issue) { i.Resolved = &resolved }),
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		gt.Equal(t, kpi.AvgResolutionDays, 2)
	})

	t.Run("zero qualifying issues yields zero", func(t *testing.T) {
		issues := []*model.Issue{
			testIssue("PROJ-1", created, nil),
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		gt.Equal(t, kpi.AvgResolutionDays, 0)
	})

	t.Run("resolution before creation is tolerated", func(t *testing.T) {
		backwards := created.AddDate(0, 0, -1)
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) { i.Resolved = &backwards }),
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		gt.Equal(t, kpi.AvgResolutionDays, -1)
	})
}

func TestAggregateDefaults(t *testing.T) {
	issues := []*model.Issue{
		testIssue("PROJ-1", testNow.AddDate(0, 0, -1), nil),
	}

	_, lists := usecase.Aggregate(issues, nil, testNow)

	gt.Equal(t, lists.Recent[0].Assignee, "Unassigned")
	gt.Equal(t, lists.Recent[0].Priority, "None")
	gt.Equal(t, lists.Popular[0].WatchCount, 0)
	gt.Equal(t, lists.Hot[0].CommentCount, 0)
}

func TestAggregateStableOrderOnTies(t *testing.T) {
	created := testNow.AddDate(0, 0, -5)
	issues := []*model.Issue{
		testIssue("PROJ-1", created, func(i *model.Issue) { i.WatchCount = 7 }),
		testIssue("PROJ-2", created, func(i *model.Issue) { i.WatchCount = 7 }),
		testIssue("PROJ-3", created, func(i *model.Issue) { i.WatchCount = 7 }),
	}

	_, lists := usecase.Aggregate(issues, nil, testNow)

	// Ties preserve fetch order
	gt.Equal(t, lists.Popular[0].Key, types.IssueKey("PROJ-1"))
	gt.Equal(t, lists.Popular[1].Key, types.IssueKey("PROJ-2"))
	gt.Equal(t, lists.Popular[2].Key, types.IssueKey("PROJ-3"))
	gt.Equal(t, lists.Recent[0].Key, types.IssueKey("PROJ-1"))
}

func TestAggregateIdempotent(t *testing.T) {
	base := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	var issues []*model.Issue
	for i := 0; i < 8; i++ {
		issue := testIssue(fmt.Sprintf("PROJ-%d", i+1), base.AddDate(0, 0, i), func(is *model.Issue) {
			is.WatchCount = i % 3
			is.CommentCount = i % 4
		})
		issues = append(issues, issue)
	}

	kpi1, lists1 := usecase.Aggregate(issues, nil, testNow)
	kpi2, lists2 := usecase.Aggregate(issues, nil, testNow)

	out1, err := json.Marshal(map[string]any{"kpi": kpi1, "topLists": lists1})
	gt.NoError(t, err)
	out2, err := json.Marshal(map[string]any{"kpi": kpi2, "topLists": lists2})
	gt.NoError(t, err)
	gt.Equal(t, string(out1), string(out2))

	// Input order is untouched
	gt.Equal(t, issues[0].Key, types.IssueKey("PROJ-1"))
	gt.Equal(t, issues[7].Key, types.IssueKey("PROJ-8"))
}

func TestAggregateUndatedRecords(t *testing.T) {
	issues := []*model.Issue{
		testIssue("PROJ-1", time.Time{}, nil),
		testIssue("PROJ-2", testNow.AddDate(0, 0, -10), nil),
	}

	kpi, lists := usecase.Aggregate(issues, nil, testNow)

	// Undated records still count and stay listable
	gt.Equal(t, kpi.TotalIssues, 2)
	gt.Equal(t, len(lists.Recent), 2)
	gt.Equal(t, lists.Recent[0].Key, types.IssueKey("PROJ-2"))

	// But they rank after every dated record in the age-based list
	gt.Equal(t, len(lists.Oldest), 2)
	gt.Equal(t, lists.Oldest[0].Key, types.IssueKey("PROJ-2"))
	gt.Equal(t, lists.Oldest[1].Key, types.IssueKey("PROJ-1"))
	gt.Equal(t, lists.Oldest[1].DaysOld, 0)
}

func TestAggregateClassifierPolicy(t *testing.T) {
	created := testNow.AddDate(0, 0, -4)

	t.Run("status category wins when present", func(t *testing.T) {
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) {
				i.Status = "Shipped"
				i.StatusCategory = model.StatusCategoryDone
			}),
			testIssue("PROJ-2", created, func(i *model.Issue) {
				// A "Done" name in a non-done category is not resolved
				i.Status = "Done"
				i.StatusCategory = "indeterminate"
			}),
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		gt.Equal(t, kpi.ResolvedIssues, 1)
	})

	t.Run("allowlist fallback without category", func(t *testing.T) {
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) { i.Status = "Done" }),
			testIssue("PROJ-2", created, func(i *model.Issue) { i.Status = "Resolved" }),
			testIssue("PROJ-3", created, func(i *model.Issue) { i.Status = "Closed" }),
			testIssue("PROJ-4", created, func(i *model.Issue) { i.Status = "done" }), // case-sensitive
		}
		kpi, _ := usecase.Aggregate(issues, nil, testNow)
		gt.Equal(t, kpi.ResolvedIssues, 3)
	})

	t.Run("custom classifier is honored", func(t *testing.T) {
		issues := []*model.Issue{
			testIssue("PROJ-1", created, func(i *model.Issue) { i.Status = "Won't Fix" }),
		}
		classifier := model.NewResolvedClassifier([]string{"Won't Fix"})
		kpi, _ := usecase.Aggregate(issues, classifier, testNow)
		gt.Equal(t, kpi.ResolvedIssues, 1)
	})
}

func TestAggregateResolutionRateRounding(t *testing.T) {
	created := testNow.AddDate(0, 0, -2)
	var issues []*model.Issue
	for i := 0; i < 3; i++ {
		issue := testIssue(fmt.Sprintf("PROJ-%d", i+1), created, nil)
		if i == 0 {
			issue.StatusCategory = model.StatusCategoryDone
		}
		issues = append(issues, issue)
	}

	kpi, _ := usecase.Aggregate(issues, nil, testNow)

	// 1/3 = 33.33% rounds to 33
	gt.Equal(t, kpi.ResolutionRate, 33)
}
