// Package cmd provides the command-line interface for the cremita tool.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paulinagorecka/cremita/internal/config"
	"github.com/paulinagorecka/cremita/internal/github"
	"github.com/paulinagorecka/cremita/internal/issues"
	"github.com/paulinagorecka/cremita/internal/jira"
	"github.com/paulinagorecka/cremita/internal/logging"
	"github.com/paulinagorecka/cremita/internal/report"
)

// newClients builds the GitHub and JIRA clients from configuration.
var newClients = func(cfg *config.Config) (CommitSource, issues.Fetcher, error) {
	githubClient, err := github.NewClient(cfg.GitHub)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize github client: %w", err)
	}

	jiraClient, err := jira.NewClient(cfg.Jira)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize jira client: %w", err)
	}

	return githubClient, jiraClient, nil
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cremita <repository> <start> <end>",
		Short: "Report the JIRA issues shipped between two tags",
		Long: `Cremita lists the JIRA issues referenced by the commits between two tags
of a GitHub repository, grouped under their parent task.

Commits are compared with the GitHub API. Every JIRA key found in a commit
message (e.g. ABC-123) is looked up in JIRA together with its parent task.
GitHub issue references written as I-<number> are listed separately.

If no commits are found between <start> and <end>, the tags are swapped and
the comparison is retried once.

Configuration is read from the environment or a .env file:
  GITHUB_ACCESS_TOKEN   GitHub token (optional for public repositories)
  GITHUB_DOMAIN         GitHub Enterprise host (default github.com)
  JIRA_SITE             JIRA base URL
  JIRA_USERNAME         JIRA user
  JIRA_PASSWORD         JIRA password or API token

Example:
  cremita acme/widgets v1.2.0 v1.3.0 --status Closed --type Bug`,
		Args:          cobra.ExactArgs(3),
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().BoolP("tasks", "t", false, "Show only top-level tasks, no sub-tasks")
	cmd.Flags().BoolP("priority", "p", false, "Show the priority of each issue")
	cmd.Flags().String("status", "", "Keep only tasks with this JIRA status")
	cmd.Flags().String("type", "", "Keep only tasks with this JIRA issue type")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; runtime errors need no usage text.
	cmd.SilenceUsage = true

	opts := reportOptions{
		Repository: args[0],
		StartTag:   args[1],
		EndTag:     args[2],
	}

	var err error
	if opts.TasksOnly, err = cmd.Flags().GetBool("tasks"); err != nil {
		return err
	}
	if opts.ShowPriority, err = cmd.Flags().GetBool("priority"); err != nil {
		return err
	}
	if opts.Status, err = cmd.Flags().GetString("status"); err != nil {
		return err
	}
	if opts.Type, err = cmd.Flags().GetString("type"); err != nil {
		return err
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateJiraConfig(cfg); err != nil {
		return err
	}

	logging.Info("starting report",
		"repository", opts.Repository,
		"start", opts.StartTag,
		"end", opts.EndTag,
		"tasks_only", opts.TasksOnly,
		"status", opts.Status,
		"type", opts.Type)

	commitSource, fetcher, err := newClients(cfg)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cfg.Jira.URL, cfg.GitHub.Domain, opts.ShowPriority)
	if noColor {
		renderer.NoColor = true
	}

	return runReport(cmd.Context(), cmd.OutOrStdout(), opts, commitSource, fetcher, renderer)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
