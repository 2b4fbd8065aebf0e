// Package storage loads and saves review rubrics as yaml files.
package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/preflighthq/preflight/pkg/domain/review"
	"gopkg.in/yaml.v3"
)

// RubricStore reads and writes rubric files.
type RubricStore struct {
	retryConfig retry.Config
}

// NewRubricStore creates a store with a short transient-read retry policy.
func NewRubricStore() *RubricStore {
	return &RubricStore{
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Load reads a rubric yaml file and validates it. An invalid rubric is an
// error, never a partially usable one.
func (s *RubricStore) Load(path string) (*review.Rubric, error) {
	retryer := retry.New[*review.Rubric](s.retryConfig)

	rubric, err := retryer.Do(context.Background(), func(ctx context.Context) (*review.Rubric, error) {
		// #nosec G304 -- path is operator supplied on the command line
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read rubric file: %w", err)
		}

		var r review.Rubric
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rubric: %w", err)
		}
		return &r, nil
	})
	if err != nil {
		return nil, err
	}

	if errs := rubric.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("rubric %s failed validation: %w", path, errs[0])
	}
	return rubric, nil
}

// Save writes a rubric as yaml.
func (s *RubricStore) Save(path string, rubric *review.Rubric) error {
	data, err := yaml.Marshal(rubric)
	if err != nil {
		return fmt.Errorf("failed to marshal rubric: %w", err)
	}

	// G306: Use 0600 for files
	return os.WriteFile(path, data, 0600)
}
