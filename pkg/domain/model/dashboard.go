package model

import (
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/types"
)

// KPI holds the scalar metrics derived from one fetched issue set.
// Recomputed on every query, never persisted.
type KPI struct {
	TotalIssues       int `json:"totalIssues"`
	ResolvedIssues    int `json:"resolvedIssues"`
	ResolutionRate    int `json:"resolutionRate"`
	AvgResolutionDays int `json:"avgResolutionDays"`
}

// IssueRef is the lightweight projection shared by all ranked lists
type IssueRef struct {
	Key      types.IssueKey `json:"key"`
	Summary  string         `json:"summary"`
	Status   string         `json:"status"`
	Created  time.Time      `json:"created"`
	Assignee string         `json:"assignee"`
}

// RecentIssue is a ranked entry ordered by creation time, newest first
type RecentIssue struct {
	IssueRef
	Priority string `json:"priority"`
}

// OldestIssue is a ranked unresolved entry ordered by creation time,
// oldest first
type OldestIssue struct {
	IssueRef
	Priority string `json:"priority"`
	DaysOld  int    `json:"daysOld"`
}

// PopularIssue is a ranked entry ordered by watch count
type PopularIssue struct {
	IssueRef
	WatchCount int `json:"watchCount"`
}

// HotIssue is a ranked entry ordered by comment count
type HotIssue struct {
	IssueRef
	CommentCount int `json:"commentCount"`
}

// TopLists holds the four independently derived top-5 lists
type TopLists struct {
	Recent  []RecentIssue  `json:"recent"`
	Oldest  []OldestIssue  `json:"oldest"`
	Popular []PopularIssue `json:"popular"`
	Hot     []HotIssue     `json:"hot"`
}

// DateRange bounds a query by issue creation date, ISO-8601 dates
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.StartDate == "" && r.EndDate == ""
}

// Dashboard is the canonical outbound query result. The deprecated
// "issues"/"oldestUnresolved" field naming is not emitted.
type Dashboard struct {
	ProjectKey types.ProjectKey `json:"projectKey"`
	DateRange  DateRange        `json:"dateRange"`
	User       *Identity        `json:"user,omitempty"`
	KPI        KPI              `json:"kpi"`
	TopLists   TopLists         `json:"topLists"`
}

// SearchQuery describes one issue search request. The JQL shaping from
// these fields lives in the API client.
type SearchQuery struct {
	ProjectKey types.ProjectKey
	DateRange  DateRange
	// CurrentUserOnly restricts the search to issues assigned to the
	// authenticated caller
	CurrentUserOnly bool
	MaxResults      int
}
