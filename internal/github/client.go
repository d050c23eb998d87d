// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/paulinagorecka/cremita/internal/config"
	"github.com/paulinagorecka/cremita/internal/logging"
	"github.com/paulinagorecka/cremita/pkg/models"
)

// ErrInvalidRepository is returned when a repository is not in "owner/repo" form.
var ErrInvalidRepository = errors.New("invalid repository")

// Client encapsulates the GitHub API client.
type Client struct {
	client *github.Client
}

// apiURLForDomain returns the REST API root for a GitHub or GitHub Enterprise domain.
func apiURLForDomain(domain string) string {
	if domain == "" || domain == config.DefaultGitHubDomain {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// NewClient creates a GitHub API client from configuration. Without a token
// the client is unauthenticated and limited to public repositories.
func NewClient(cfg config.GitHubConfig) (*Client, error) {
	domain := cfg.Domain
	if domain == "" {
		domain = config.DefaultGitHubDomain
	}
	apiURL := apiURLForDomain(domain)

	logging.Debug("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(cfg.Token))

	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		logging.Warn("github token not set, using unauthenticated requests")
	}

	client := github.NewClient(httpClient)

	if domain != config.DefaultGitHubDomain {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}
		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	return &Client{client: client}, nil
}

// splitRepository parses "owner/repo".
func splitRepository(repository string) (string, string, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s, expected format: owner/repo", ErrInvalidRepository, repository)
	}
	return parts[0], parts[1], nil
}

// CompareCommits returns the commits reachable from head but not from base,
// oldest first. The repository should be in the format "owner/repo".
func (c *Client) CompareCommits(ctx context.Context, repository, base, head string) ([]models.Commit, error) {
	owner, repo, err := splitRepository(repository)
	if err != nil {
		return nil, err
	}

	logging.Debug("comparing commits", "repository", repository, "base", base, "head", head)

	comparison, resp, err := c.client.Repositories.CompareCommits(ctx, owner, repo, base, head, nil)
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		logging.Debug("failed to compare commits",
			"repository", repository,
			"base", base,
			"head", head,
			"status_code", statusCode,
			"error", err)
		return nil, fmt.Errorf("failed to compare %s...%s in %s: %w", base, head, repository, err)
	}

	commits := make([]models.Commit, 0, len(comparison.Commits))
	for _, commit := range comparison.Commits {
		commits = append(commits, models.Commit{
			Message: commit.GetCommit().GetMessage(),
		})
	}

	logging.Debug("compared commits",
		"repository", repository,
		"commit_count", len(commits),
		"total_commits", comparison.GetTotalCommits())

	return commits, nil
}
