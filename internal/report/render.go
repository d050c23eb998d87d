// Package report renders JIRA issue groups and GitHub issue references
// as colorized terminal text.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/paulinagorecka/cremita/internal/issues"
	"github.com/paulinagorecka/cremita/pkg/models"
)

const (
	childIndent     = "    "
	summaryLimit    = 50
	summaryKeep     = 48
	summaryEllipsis = "..."
)

// statusColors maps JIRA status category colors to terminal colors.
var statusColors = map[string]color.Attribute{
	"yellow":    color.FgYellow,
	"green":     color.FgGreen,
	"blue-gray": color.FgBlue,
}

// typeIcons maps JIRA issue type names to the icon shown next to the status.
var typeIcons = map[string]string{
	"Bug":             "🐞 ",
	"Story":           "📘 ",
	"Technical Task":  "🔨 ",
	"Technical Story": "🔨 ",
	"Improvement":     "👻 ",
	"Buglet":          "🐞 ",
}

// Renderer formats issues for the terminal.
type Renderer struct {
	// SiteURL is the JIRA base URL used for browse links
	SiteURL string

	// GitHubDomain is the host used for GitHub issue links
	GitHubDomain string

	// ShowPriority appends the issue priority inside the status brackets
	ShowPriority bool

	// NoColor disables all ANSI styling
	NoColor bool
}

// NewRenderer returns a Renderer that colors output unless color output is
// globally disabled (non-terminal stdout or NO_COLOR).
func NewRenderer(siteURL, githubDomain string, showPriority bool) *Renderer {
	return &Renderer{
		SiteURL:      strings.TrimRight(siteURL, "/"),
		GitHubDomain: githubDomain,
		ShowPriority: showPriority,
		NoColor:      color.NoColor,
	}
}

func (r *Renderer) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(text)
}

// IssueURL returns the browse URL of a JIRA issue.
func (r *Renderer) IssueURL(key string) string {
	return r.SiteURL + "/browse/" + key
}

// TrackerURL returns the URL of a GitHub issue in repository.
func (r *Renderer) TrackerURL(repository, id string) string {
	return fmt.Sprintf("https://%s/%s/issues/%s", r.GitHubDomain, repository, id)
}

// IssueLine renders one issue. Child lines are indented and carry no URL;
// parent lines are followed by the browse URL on their own line.
func (r *Renderer) IssueLine(issue models.JiraIssue, child bool) string {
	status := issue.Status
	if attr, ok := statusColors[issue.StatusColor]; ok {
		status = r.paint(status, attr)
	}

	priority := ""
	if r.ShowPriority && issue.Priority != "" {
		priority = " - " + issue.Priority
	}

	indent := ""
	if child {
		indent = childIndent
	}

	line := fmt.Sprintf("%s%s [%s%s %s] %s",
		indent, issue.Key, status, priority, typeIcons[issue.Type], truncate(issue.Summary))

	if child {
		return line
	}
	return line + "\n" + indent + r.paint(r.IssueURL(issue.Key), color.Underline)
}

// Groups renders every group as a blank line, the parent line when the
// parent is part of the group, and one indented line per child.
func (r *Renderer) Groups(groups []issues.Group) string {
	var b strings.Builder
	for _, group := range groups {
		b.WriteString("\n")
		if parent, ok := group.Parent(); ok {
			b.WriteString(r.IssueLine(parent, false))
			b.WriteString("\n")
		}
		for _, child := range group.Children() {
			b.WriteString(r.IssueLine(child, true))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// TrackerRefs renders the GitHub issue references found in commits.
// It returns an empty string when there are none.
func (r *Renderer) TrackerRefs(repository string, refs []string) string {
	if len(refs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nGithub issues:\n")
	for _, id := range refs {
		fmt.Fprintf(&b, "#%s: %s\n", id, r.paint(r.TrackerURL(repository, id), color.Underline))
	}
	return b.String()
}

// truncate shortens summaries longer than summaryLimit characters.
func truncate(summary string) string {
	runes := []rune(summary)
	if len(runes) <= summaryLimit {
		return summary
	}
	return string(runes[:summaryKeep]) + summaryEllipsis
}
