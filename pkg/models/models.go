// Package models defines data structures shared across the application.
package models

// Commit represents a single commit returned by a GitHub compare.
type Commit struct {
	// Message is the full commit message
	Message string
}

// IssueRef points at another JIRA issue by key.
type IssueRef struct {
	Key string
}

// JiraIssue represents a JIRA issue with the fields the report needs.
type JiraIssue struct {
	// Key is the full JIRA issue identifier (e.g., "ABC-123")
	Key string

	// Summary is the issue's one-line title
	Summary string

	// Status is the workflow status name (e.g., "In Progress", "Closed")
	Status string

	// StatusColor is the status category color name (e.g., "yellow", "green", "blue-gray")
	StatusColor string

	// Type is the JIRA issue type name (e.g., "Story", "Bug", "Technical Task")
	Type string

	// Parent is set when the issue is a sub-task of another issue
	Parent *IssueRef

	// Priority is the priority name, empty when the issue has none
	Priority string
}

// HasParent reports whether the issue references a parent issue.
func (i JiraIssue) HasParent() bool {
	return i.Parent != nil && i.Parent.Key != ""
}
