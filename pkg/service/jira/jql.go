package jira

import (
	"fmt"
	"strings"

	"github.com/issuepulse/issuepulse/pkg/domain/model"
)

// quoteJQL wraps a value in double quotes, escaping embedded backslashes
// and quotes. Project keys and date bounds come from caller input and are
// not guaranteed to be free of JQL reserved characters.
func quoteJQL(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// buildJQL shapes the search query: project scope, optional creation-date
// window, optional restriction to the authenticated caller
func buildJQL(query model.SearchQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "project = %s", quoteJQL(query.ProjectKey.String()))
	if query.DateRange.StartDate != "" && query.DateRange.EndDate != "" {
		fmt.Fprintf(&b, " AND created >= %s AND created <= %s",
			quoteJQL(query.DateRange.StartDate), quoteJQL(query.DateRange.EndDate))
	}
	if query.CurrentUserOnly {
		b.WriteString(" AND assignee = currentUser()")
	}
	return b.String()
}
