package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulinagorecka/cremita/pkg/models"
)

func TestGroupByParent(t *testing.T) {
	issues := []models.JiraIssue{
		subtask("ABC-3", "ABC-1"),
		task("ABC-1"),
		task("XYZ-7"),
		subtask("ABC-2", "ABC-1"),
		subtask("DEF-2", "DEF-1"),
	}

	groups := GroupByParent(issues)

	require.Len(t, groups, 3)
	assert.Equal(t, "ABC-1", groups[0].ParentKey)
	assert.Equal(t, []models.JiraIssue{subtask("ABC-3", "ABC-1"), task("ABC-1"), subtask("ABC-2", "ABC-1")}, groups[0].Issues)
	assert.Equal(t, "XYZ-7", groups[1].ParentKey)
	assert.Equal(t, "DEF-1", groups[2].ParentKey)

	parent, ok := groups[0].Parent()
	assert.True(t, ok)
	assert.Equal(t, task("ABC-1"), parent)
	assert.Equal(t, []models.JiraIssue{subtask("ABC-3", "ABC-1"), subtask("ABC-2", "ABC-1")}, groups[0].Children())

	_, ok = groups[2].Parent()
	assert.False(t, ok, "DEF-1 was not part of the input")
	assert.Len(t, groups[2].Children(), 1)
}

func TestGroupByParentIsPartition(t *testing.T) {
	issues := []models.JiraIssue{
		task("ABC-1"),
		subtask("ABC-2", "ABC-1"),
		task("ABC-1"),
		subtask("ABC-5", "ABC-4"),
		task("ABC-4"),
		subtask("ABC-2", "ABC-1"),
	}

	groups := GroupByParent(issues)

	counts := make(map[string]int)
	for _, group := range groups {
		for _, member := range group.Issues {
			counts[member.Key]++
			assert.Equal(t, group.ParentKey, ParentKey(member))
		}
	}
	assert.Equal(t, map[string]int{"ABC-1": 1, "ABC-2": 1, "ABC-4": 1, "ABC-5": 1}, counts)
	assert.Empty(t, GroupByParent(nil))
}

func TestFilterByStatus(t *testing.T) {
	closed := task("ABC-1")
	closed.Status = "Closed"
	open := task("ABC-2")

	testCases := []struct {
		name     string
		status   string
		expected []models.JiraIssue
	}{
		{name: "Matching status is kept", status: "Closed", expected: []models.JiraIssue{closed}},
		{name: "Other status is excluded", status: "Open", expected: []models.JiraIssue{open}},
		{name: "Match is case sensitive", status: "closed", expected: []models.JiraIssue{}},
		{name: "Unknown status yields empty", status: "Done", expected: []models.JiraIssue{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FilterByStatus([]models.JiraIssue{closed, open}, tc.status))
		})
	}
}

func TestFilterByType(t *testing.T) {
	bug := task("ABC-1")
	bug.Type = "Bug"
	story := task("ABC-2")

	assert.Equal(t, []models.JiraIssue{bug}, FilterByType([]models.JiraIssue{bug, story}, "Bug"))
	assert.Equal(t, []models.JiraIssue{story}, FilterByType([]models.JiraIssue{bug, story}, "Story"))
	assert.Empty(t, FilterByType([]models.JiraIssue{bug, story}, "Epic"))
}
