package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-derived configuration surface. Every field is
// optional here; commands validate what they actually need and CLI flags
// take precedence.
type Config struct {
	// GitHub organization to search for merged pull requests.
	Org string `envconfig:"GITHUB_ORG" default:"vatfree"`
	// Overrides the author email otherwise read from git config.
	UserEmail string `envconfig:"GIT_USER_EMAIL"`

	// Slack member ID used to match huddle participation.
	SlackUserID string `envconfig:"SLACK_USER_ID"`
	// Directory holding the browser-exported slack_huddles*.json.
	HuddlesPath string `envconfig:"SLACK_HUDDLES_PATH" default:"~/Downloads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
