// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultGitHubDomain is used when GITHUB_DOMAIN is not set.
const DefaultGitHubDomain = "github.com"

// ErrMissingConfig is returned when required environment variables are not set.
var ErrMissingConfig = errors.New("missing required environment variables")

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
	Jira   JiraConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token  string
	Domain string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	URL      string
	Username string
	Password string
}

// LoadConfig initializes and loads configuration from environment variables.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	// Only explicit bindings are read so the first listed variable wins.
	v := viper.New()
	bindings := map[string][]string{
		"github.token":  {"GITHUB_ACCESS_TOKEN", "GITHUB_TOKEN"},
		"github.domain": {"GITHUB_DOMAIN"},
		"jira.url":      {"JIRA_SITE", "JIRA_URL"},
		"jira.username": {"JIRA_USERNAME"},
		"jira.password": {"JIRA_PASSWORD", "JIRA_TOKEN"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	v.SetDefault("github.domain", DefaultGitHubDomain)

	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Jira: JiraConfig{
			URL:      strings.TrimRight(v.GetString("jira.url"), "/"),
			Username: v.GetString("jira.username"),
			Password: v.GetString("jira.password"),
		},
	}

	if config.GitHub.Domain == "" {
		config.GitHub.Domain = DefaultGitHubDomain
	}

	return config, nil
}

// ValidateJiraConfig validates JIRA-specific configuration.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	if config.Jira.URL == "" {
		missingVars = append(missingVars, "JIRA_SITE")
	}
	if config.Jira.Username == "" {
		missingVars = append(missingVars, "JIRA_USERNAME")
	}
	if config.Jira.Password == "" {
		missingVars = append(missingVars, "JIRA_PASSWORD")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingConfig, missingVars)
	}

	return nil
}
