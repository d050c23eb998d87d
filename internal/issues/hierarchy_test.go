package issues

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulinagorecka/cremita/pkg/models"
)

// MockFetcher is a mock implementation of Fetcher
type MockFetcher struct {
	IssuesByKeysFunc func(ctx context.Context, keys []string) ([]models.JiraIssue, error)
	Calls            [][]string
}

func (m *MockFetcher) IssuesByKeys(ctx context.Context, keys []string) ([]models.JiraIssue, error) {
	m.Calls = append(m.Calls, keys)
	if m.IssuesByKeysFunc != nil {
		return m.IssuesByKeysFunc(ctx, keys)
	}
	return nil, nil
}

func task(key string) models.JiraIssue {
	return models.JiraIssue{Key: key, Summary: "Task " + key, Status: "Open", Type: "Story"}
}

func subtask(key, parent string) models.JiraIssue {
	return models.JiraIssue{
		Key:     key,
		Summary: "Sub-task " + key,
		Status:  "Open",
		Type:    "Technical Task",
		Parent:  &models.IssueRef{Key: parent},
	}
}

func TestParentKey(t *testing.T) {
	assert.Equal(t, "ABC-1", ParentKey(task("ABC-1")))
	assert.Equal(t, "ABC-1", ParentKey(subtask("ABC-2", "ABC-1")))

	emptyParent := task("ABC-3")
	emptyParent.Parent = &models.IssueRef{}
	assert.Equal(t, "ABC-3", ParentKey(emptyParent))
}

func TestParentKeys(t *testing.T) {
	issues := []models.JiraIssue{
		subtask("ABC-2", "ABC-1"),
		task("ABC-5"),
		subtask("ABC-3", "ABC-1"),
		task("ABC-1"),
	}

	assert.Equal(t, []string{"ABC-1", "ABC-5"}, ParentKeys(issues))
	assert.Nil(t, ParentKeys(nil))
}

func TestParentIssues(t *testing.T) {
	t.Run("fetches distinct parent keys once", func(t *testing.T) {
		fetcher := &MockFetcher{
			IssuesByKeysFunc: func(ctx context.Context, keys []string) ([]models.JiraIssue, error) {
				result := make([]models.JiraIssue, 0, len(keys))
				for _, key := range keys {
					result = append(result, task(key))
				}
				return result, nil
			},
		}

		parents, err := ParentIssues(context.Background(), fetcher, []models.JiraIssue{
			subtask("ABC-2", "ABC-1"),
			subtask("ABC-3", "ABC-1"),
			task("XYZ-9"),
		})

		require.NoError(t, err)
		require.Len(t, fetcher.Calls, 1)
		assert.Equal(t, []string{"ABC-1", "XYZ-9"}, fetcher.Calls[0])
		assert.Equal(t, []models.JiraIssue{task("ABC-1"), task("XYZ-9")}, parents)
	})

	t.Run("wraps fetch errors", func(t *testing.T) {
		fetcher := &MockFetcher{
			IssuesByKeysFunc: func(ctx context.Context, keys []string) ([]models.JiraIssue, error) {
				return nil, errors.New("jql rejected")
			},
		}

		_, err := ParentIssues(context.Background(), fetcher, []models.JiraIssue{task("ABC-1")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jql rejected")
	})
}

func TestChildIssues(t *testing.T) {
	issues := []models.JiraIssue{
		task("ABC-1"),
		subtask("ABC-2", "ABC-1"),
		task("ABC-4"),
		subtask("ABC-3", "ABC-4"),
	}

	assert.Equal(t, []models.JiraIssue{subtask("ABC-2", "ABC-1"), subtask("ABC-3", "ABC-4")}, ChildIssues(issues))
	assert.Empty(t, ChildIssues([]models.JiraIssue{task("ABC-1")}))
}
