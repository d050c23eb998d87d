package issues

import (
	"github.com/paulinagorecka/cremita/pkg/models"
)

// Group holds the issues sharing one parent key. The parent itself is part
// of Issues when it was present in the grouped input.
type Group struct {
	ParentKey string
	Issues    []models.JiraIssue
}

// Parent returns the member whose key equals the group key.
func (g Group) Parent() (models.JiraIssue, bool) {
	for _, issue := range g.Issues {
		if issue.Key == g.ParentKey {
			return issue, true
		}
	}
	return models.JiraIssue{}, false
}

// Children returns every member except the parent, in insertion order.
func (g Group) Children() []models.JiraIssue {
	var children []models.JiraIssue
	for _, issue := range g.Issues {
		if issue.Key != g.ParentKey {
			children = append(children, issue)
		}
	}
	return children
}

// GroupByParent partitions issues by ParentKey. Groups keep the order in
// which their key was first seen and members keep their input order.
// An issue key listed more than once is kept only the first time.
func GroupByParent(issues []models.JiraIssue) []Group {
	var groups []Group
	index := make(map[string]int)
	seen := make(map[string]bool)

	for _, issue := range issues {
		if seen[issue.Key] {
			continue
		}
		seen[issue.Key] = true

		key := ParentKey(issue)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{ParentKey: key})
		}
		groups[i].Issues = append(groups[i].Issues, issue)
	}

	return groups
}

// FilterByStatus keeps the issues whose status name equals status exactly.
func FilterByStatus(issues []models.JiraIssue, status string) []models.JiraIssue {
	return filter(issues, func(issue models.JiraIssue) bool {
		return issue.Status == status
	})
}

// FilterByType keeps the issues whose type name equals issueType exactly.
func FilterByType(issues []models.JiraIssue, issueType string) []models.JiraIssue {
	return filter(issues, func(issue models.JiraIssue) bool {
		return issue.Type == issueType
	})
}

func filter(issues []models.JiraIssue, keep func(models.JiraIssue) bool) []models.JiraIssue {
	result := []models.JiraIssue{}
	for _, issue := range issues {
		if keep(issue) {
			result = append(result, issue)
		}
	}
	return result
}
