// Package classify is the optional post-processing stage applied to a
// reconciliation result, for example to separate personal accounts from
// business or celebrity accounts.
//
// The stage is best effort. Stage.Apply returns its input unchanged when the
// stage is disabled, when the classifier fails, or when it returns accounts
// that were not in its input.
package classify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Classifier filters or reorders a list of accounts.
type Classifier interface {
	Classify(ctx context.Context, accounts []string) ([]string, error)
}

// Identity returns its input unchanged.
type Identity struct{}

// Classify implements Classifier.
func (Identity) Classify(ctx context.Context, accounts []string) ([]string, error) {
	return accounts, nil
}

// Config holds configuration for the classification stage.
type Config struct {
	// Enabled turns the stage on. Off by default. It only has an effect when a
	// Classifier is passed to NewStage; otherwise accounts pass through.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// TimeoutSeconds bounds a single classification call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Stage wraps a Classifier with the degrade-to-passthrough policy.
type Stage struct {
	classifier Classifier
	enabled    bool
	timeout    time.Duration
	logger     *zap.Logger
}

// NewStage creates a stage. A nil classifier behaves like Identity.
func NewStage(c Classifier, cfg Config, logger *zap.Logger) *Stage {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		if cfg.Enabled {
			logger.Warn("Classification enabled but no classifier is registered; accounts pass through unchanged")
		}
		c = Identity{}
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Stage{classifier: c, enabled: cfg.Enabled, timeout: timeout, logger: logger}
}

// Enabled reports whether the stage calls its classifier.
func (s *Stage) Enabled() bool {
	return s != nil && s.enabled
}

// Apply runs the classifier and falls back to accounts on any failure.
func (s *Stage) Apply(ctx context.Context, accounts []string) []string {
	if !s.Enabled() || len(accounts) == 0 {
		return accounts
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.classifier.Classify(ctx, accounts)
	if err == nil {
		err = checkSubset(accounts, out)
	}
	if err != nil {
		s.logger.Warn("Classification failed, keeping unclassified result",
			zap.Int("accounts", len(accounts)),
			zap.Error(err))
		return accounts
	}
	return out
}

func checkSubset(in, out []string) error {
	allowed := make(map[string]struct{}, len(in))
	for _, a := range in {
		allowed[a] = struct{}{}
	}
	for _, a := range out {
		if _, ok := allowed[a]; !ok {
			return fmt.Errorf("classifier returned unknown account %q", a)
		}
	}
	return nil
}
