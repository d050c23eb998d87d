// Package jira provides functionality for interacting with the JIRA API.
package jira

import (
	"context"
	"fmt"
	"strings"

	jira "github.com/andygrunwald/go-jira"

	"github.com/paulinagorecka/cremita/internal/config"
	"github.com/paulinagorecka/cremita/internal/logging"
	"github.com/paulinagorecka/cremita/pkg/models"
)

// searchFields limits the search response to what the report renders.
var searchFields = []string{"summary", "status", "issuetype", "parent", "priority"}

// maxResults bounds a single batched search.
const maxResults = 1000

// Client handles interactions with the JIRA API
type Client struct {
	client *jira.Client
}

// NewClient creates a new JIRA client using basic authentication.
func NewClient(cfg config.JiraConfig) (*Client, error) {
	logging.Debug("jira configuration",
		"url", cfg.URL,
		"username", cfg.Username,
		"password", logging.MaskSensitive(cfg.Password))

	tp := jira.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	client, err := jira.NewClient(tp.Client(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Client{client: client}, nil
}

// IssueQuery builds the JQL selecting exactly the given keys.
func IssueQuery(keys []string) string {
	return fmt.Sprintf("issuekey in (%s)", strings.Join(keys, ", "))
}

// IssuesByKeys fetches all issues for keys in a single search. An empty key
// list returns no issues without calling JIRA. Keys JIRA does not know are
// skipped rather than failing the whole query.
func (c *Client) IssuesByKeys(ctx context.Context, keys []string) ([]models.JiraIssue, error) {
	if len(keys) == 0 {
		return []models.JiraIssue{}, nil
	}

	jql := IssueQuery(keys)
	logging.Debug("searching jira issues", "jql", jql, "key_count", len(keys))

	issues, resp, err := c.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		MaxResults:    maxResults,
		Fields:        searchFields,
		ValidateQuery: "warn",
	})
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		logging.Debug("failed to search jira issues",
			"jql", jql,
			"status_code", statusCode,
			"error", err)
		return nil, fmt.Errorf("failed to search JIRA issues: %w", err)
	}

	result := make([]models.JiraIssue, 0, len(issues))
	for _, issue := range issues {
		result = append(result, toModel(issue))
	}

	logging.Debug("found jira issues", "requested", len(keys), "found", len(result))
	return result, nil
}

// toModel converts a go-jira issue into our internal model.
func toModel(issue jira.Issue) models.JiraIssue {
	result := models.JiraIssue{Key: issue.Key}

	fields := issue.Fields
	if fields == nil {
		return result
	}

	result.Summary = fields.Summary
	result.Type = fields.Type.Name

	if fields.Status != nil {
		result.Status = fields.Status.Name
		result.StatusColor = fields.Status.StatusCategory.ColorName
	}
	if fields.Parent != nil && fields.Parent.Key != "" {
		result.Parent = &models.IssueRef{Key: fields.Parent.Key}
	}
	if fields.Priority != nil {
		result.Priority = fields.Priority.Name
	}

	return result
}
