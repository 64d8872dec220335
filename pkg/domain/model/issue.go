package model

import (
	"math"
	"time"

	"github.com/issuepulse/issuepulse/pkg/domain/types"
)

// StatusCategoryDone is the coarse-grained category key Jira assigns to
// completed workflow states
const StatusCategoryDone = "done"

// Identity is the result of the "who am I" endpoint
type Identity struct {
	AccountID    types.AccountID `json:"accountId"`
	DisplayName  string          `json:"displayName"`
	EmailAddress string          `json:"emailAddress"`
}

// Project is a single entry from the project listing endpoint
type Project struct {
	ID   string           `json:"id"`
	Key  types.ProjectKey `json:"key"`
	Name string           `json:"name"`
}

// Issue is a fetched issue record. It is read-only once fetched; the
// aggregation pipeline never mutates it.
type Issue struct {
	Key            types.IssueKey
	Summary        string
	Status         string
	StatusCategory string // coarse category key, empty when the API omits it
	Created        time.Time
	Resolved       *time.Time
	Assignee       string // empty when unassigned
	Priority       string // empty when none
	WatchCount     int
	CommentCount   int
}

// HasCreated reports whether the record carries a creation timestamp.
// Malformed records without one are tolerated but excluded from
// duration and age computations.
func (i *Issue) HasCreated() bool {
	return !i.Created.IsZero()
}

// ResolutionDays returns the per-issue resolution duration in whole days
// (ceiling), and false when either timestamp is missing. A resolution
// before creation is unusual data, not an error; the negative value is
// returned as-is.
func (i *Issue) ResolutionDays() (int, bool) {
	if !i.HasCreated() || i.Resolved == nil {
		return 0, false
	}
	days := i.Resolved.Sub(i.Created).Hours() / 24
	return int(math.Ceil(days)), true
}

// AgeDays returns the whole days elapsed since creation, or 0 when the
// creation timestamp is missing
func (i *Issue) AgeDays(now time.Time) int {
	if !i.HasCreated() {
		return 0
	}
	return int(now.Sub(i.Created).Hours() / 24)
}
