package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/paulinagorecka/cremita/internal/extract"
	"github.com/paulinagorecka/cremita/internal/issues"
	"github.com/paulinagorecka/cremita/internal/logging"
	"github.com/paulinagorecka/cremita/internal/report"
	"github.com/paulinagorecka/cremita/pkg/models"
)

// CommitSource lists the commits between two tags of a repository.
type CommitSource interface {
	CompareCommits(ctx context.Context, repository, base, head string) ([]models.Commit, error)
}

// reportOptions carries the parsed command line.
type reportOptions struct {
	Repository   string
	StartTag     string
	EndTag       string
	TasksOnly    bool
	ShowPriority bool
	Status       string
	Type         string
}

// filtered reports whether a status or type filter was requested.
func (o reportOptions) filtered() bool {
	return o.Status != "" || o.Type != ""
}

// runReport fetches the commits between the two tags, resolves the JIRA
// issues they mention and writes the grouped report to out.
func runReport(ctx context.Context, out io.Writer, opts reportOptions, commitSource CommitSource, fetcher issues.Fetcher, renderer *report.Renderer) error {
	commits, err := fetchCommits(ctx, out, commitSource, opts.Repository, opts.StartTag, opts.EndTag)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		logging.Info("no commits found, retrying with swapped tags",
			"start", opts.StartTag,
			"end", opts.EndTag)
		commits, err = fetchCommits(ctx, out, commitSource, opts.Repository, opts.EndTag, opts.StartTag)
		if err != nil {
			return err
		}
	}

	keys := extract.IssueKeys(commits)
	logging.Debug("extracted issue keys", "count", len(keys), "keys", keys)

	jiraIssues, err := fetcher.IssuesByKeys(ctx, keys)
	if err != nil {
		return fmt.Errorf("failed to fetch jira issues: %w", err)
	}

	tasks, err := issues.ParentIssues(ctx, fetcher, jiraIssues)
	if err != nil {
		return err
	}
	subtasks := issues.ChildIssues(jiraIssues)

	// A filter implies top-level groupings only.
	tasksOnly := opts.TasksOnly || opts.filtered()

	list := tasks
	if !tasksOnly {
		list = append(append([]models.JiraIssue{}, tasks...), subtasks...)
	}
	if opts.Status != "" {
		list = issues.FilterByStatus(list, opts.Status)
	}
	if opts.Type != "" {
		list = issues.FilterByType(list, opts.Type)
	}

	groups := issues.GroupByParent(list)
	logging.Debug("grouped issues",
		"tasks", len(tasks),
		"subtasks", len(subtasks),
		"groups", len(groups))

	if _, err := io.WriteString(out, renderer.Groups(groups)); err != nil {
		return err
	}
	_, err = io.WriteString(out, renderer.TrackerRefs(opts.Repository, extract.TrackerRefs(commits)))
	return err
}

// fetchCommits compares base and head and announces the number of commits found.
func fetchCommits(ctx context.Context, out io.Writer, commitSource CommitSource, repository, base, head string) ([]models.Commit, error) {
	commits, err := commitSource.CompareCommits(ctx, repository, base, head)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "INFO: %d commits in %s between %s and %s\n", len(commits), repository, base, head)
	return commits, nil
}
