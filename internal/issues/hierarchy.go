// Package issues resolves JIRA parent/child relationships and groups,
// filters and orders issues for the report.
package issues

import (
	"context"
	"fmt"

	"github.com/paulinagorecka/cremita/internal/logging"
	"github.com/paulinagorecka/cremita/pkg/models"
)

// Fetcher loads JIRA issues by key in one batched lookup.
type Fetcher interface {
	IssuesByKeys(ctx context.Context, keys []string) ([]models.JiraIssue, error)
}

// ParentKey returns the key of the issue's parent, or the issue's own key
// when it is a top-level issue.
func ParentKey(issue models.JiraIssue) string {
	if issue.HasParent() {
		return issue.Parent.Key
	}
	return issue.Key
}

// ParentKeys returns the distinct parent keys of issues in first-seen order.
func ParentKeys(issues []models.JiraIssue) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, issue := range issues {
		key := ParentKey(issue)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// ParentIssues fetches the parent of every issue. Top-level issues are their
// own parent and are fetched again alongside the others.
func ParentIssues(ctx context.Context, fetcher Fetcher, issues []models.JiraIssue) ([]models.JiraIssue, error) {
	keys := ParentKeys(issues)
	logging.Debug("resolving parent issues", "issue_count", len(issues), "parent_count", len(keys))

	parents, err := fetcher.IssuesByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent issues: %w", err)
	}
	return parents, nil
}

// ChildIssues returns the issues that have a parent other than themselves.
func ChildIssues(issues []models.JiraIssue) []models.JiraIssue {
	var children []models.JiraIssue
	for _, issue := range issues {
		if ParentKey(issue) != issue.Key {
			children = append(children, issue)
		}
	}
	return children
}
