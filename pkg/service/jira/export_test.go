package jira

// Test-only accessors for query construction helpers
var (
	BuildJQL      = buildJQL
	QuoteJQL      = quoteJQL
	ParseJiraTime = parseJiraTime
)
