// Package extract pulls issue references out of commit messages.
package extract

import (
	"regexp"

	"github.com/paulinagorecka/cremita/pkg/models"
)

var (
	// issueKeyPattern matches JIRA keys such as "ABC-12" or "P2-7".
	issueKeyPattern = regexp.MustCompile(`[A-Z\d]+-\d+`)

	// trackerRefPattern matches GitHub issue references written as "I-42".
	trackerRefPattern = regexp.MustCompile(`I-(\d+)`)
)

// IssueKeys returns every JIRA key mentioned in the commit messages,
// deduplicated and in first-seen order.
func IssueKeys(commits []models.Commit) []string {
	seen := make(map[string]bool)
	var keys []string

	for _, commit := range commits {
		for _, key := range issueKeyPattern.FindAllString(commit.Message, -1) {
			if seen[key] {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys
}

// TrackerRefs returns the numeric GitHub issue IDs referenced as "I-<n>".
// Only the first reference of each message counts.
func TrackerRefs(commits []models.Commit) []string {
	seen := make(map[string]bool)
	var refs []string

	for _, commit := range commits {
		match := trackerRefPattern.FindStringSubmatch(commit.Message)
		if match == nil || seen[match[1]] {
			continue
		}
		seen[match[1]] = true
		refs = append(refs, match[1])
	}

	return refs
}
